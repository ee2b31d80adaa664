package core

import (
	"bytes"
	"testing"
)

func TestSafeGroupCode(t *testing.T) {
	valid := map[string]GroupCode{
		"10": 10, "18": 18, "210": 210, "1010": 1010, "1013": 1013,
		"10 ": 10, "10\r": 10, "10\n": 10, "10\t": 10,
		" 10": 10, "\r10": 10, "\n10": 10, "\t10": 10,
		" 10 ": 10, "\r10\r": 10, "\t10\t": 10,
		// 尽可能多地读取
		"10a": 10, "10#": 10, "10!": 10,
		"0": 0, "1071": 1071,
	}
	for s, want := range valid {
		if got := SafeGroupCode(s); got != want {
			t.Errorf("SafeGroupCode(%q) = %d, 期望 %d", s, got, want)
		}
	}

	invalid := []string{"-1", "1072", "-1234567890", "1234567890", "a", "#1", "!1", " ", "\n", "\r", "\t", ""}
	for _, s := range invalid {
		if got := SafeGroupCode(s); got != Error {
			t.Errorf("SafeGroupCode(%q) = %d, 期望 Error", s, got)
		}
	}
}

func TestSafeStrToInt64(t *testing.T) {
	valid := map[string]int64{
		"0": 0, "1": 1, "+1": 1, "-1": -1,
		"9223372036854775807":  9223372036854775807,
		"-9223372036854775808": -9223372036854775808,
		" 99": 99, " +99": 99, "\t99": 99, "\r+99": 99,
		" -99": -99, "\t-99": -99,
		" 99 ": 99, "\t99\t": 99,
		"99.1": 99, "99.1e2": 99, "-99.1": -99, "-99.1e2": -99,
		"1a": 1, "1e2": 1, "1E2": 1, "1+": 1, "1-": 1,
	}
	for s, want := range valid {
		got, ok := SafeStrToInt64(s)
		if !ok || got != want {
			t.Errorf("SafeStrToInt64(%q) = %d, %v, 期望 %d", s, got, ok, want)
		}
	}

	invalid := []string{"9223372036854775808", "-9223372036854775809", "a", "#1", " #1", "!1", " !1", "", "+", "-"}
	for _, s := range invalid {
		if got, ok := SafeStrToInt64(s); ok {
			t.Errorf("SafeStrToInt64(%q) = %d, 期望失败", s, got)
		}
	}
}

func TestSafeStrToReal(t *testing.T) {
	valid := map[string]float64{
		"0": 0, "1.5": 1.5, "-1.5": -1.5, "+2": 2,
		" 3.25": 3.25, "\t3.25\r\n": 3.25,
		".5": 0.5, "5.": 5, "1e3": 1000, "1.5E-1": 0.15,
		"1e": 1, "1e+": 1, "2.5xyz": 2.5, "1.5e3abc": 1500,
	}
	for s, want := range valid {
		got, ok := SafeStrToReal(s)
		if !ok || got != want {
			t.Errorf("SafeStrToReal(%q) = %g, %v, 期望 %g", s, got, ok, want)
		}
	}

	invalid := []string{"", " ", "abc", ".", "-", "+.", "e5", "1e999", "nan", "inf"}
	for _, s := range invalid {
		if got, ok := SafeStrToReal(s); ok {
			t.Errorf("SafeStrToReal(%q) = %g, 期望失败", s, got)
		}
	}
}

func TestHexlify(t *testing.T) {
	tests := []struct {
		data []byte
		want string
	}{
		{nil, ""},
		{[]byte{}, ""},
		{[]byte{0, 0, 0, 0}, "00000000"},
		{[]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}, "0123456789ABCDEF"},
	}
	for _, tt := range tests {
		if got := Hexlify(tt.data); got != tt.want {
			t.Errorf("Hexlify(%v) = %q, 期望 %q", tt.data, got, tt.want)
		}
	}
}

func TestUnhexlify(t *testing.T) {
	fefe := []byte{0xfe, 0xfe}

	if data, ok := Unhexlify(""); !ok || len(data) != 0 {
		t.Fatalf("Unhexlify(\"\") = %v, %v", data, ok)
	}

	for _, s := range []string{"FEFE", "fefe", "FEfe", "feFE", "FeFe", "fEfE", " FEFE", "FEFE ", " FEFE ", "\tFEFE\t", "FEFE0"} {
		data, ok := Unhexlify(s)
		if !ok || !bytes.Equal(data, fefe) {
			t.Errorf("Unhexlify(%q) = %X, %v", s, data, ok)
		}
	}

	if data, ok := Unhexlify("0123456789abcdef"); !ok || !bytes.Equal(data, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}) {
		t.Errorf("Unhexlify 所有字符 = %X, %v", data, ok)
	}

	if data, ok := Unhexlify("0"); !ok || len(data) != 0 {
		t.Errorf("Unhexlify(\"0\") = %X, %v, 期望空数据", data, ok)
	}

	for _, s := range []string{"x", "00%", "gg", "GG", "FE FE", "FE\tFE", "FE\rFE", "FE\nFE"} {
		if data, ok := Unhexlify(s); ok {
			t.Errorf("Unhexlify(%q) = %X, 期望失败", s, data)
		}
	}
}

func TestHexlifyRoundTrip(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	got, ok := Unhexlify(Hexlify(data))
	if !ok || !bytes.Equal(got, data) {
		t.Fatalf("往返转换失败: %X", got)
	}
}

func TestConcatenateBytes(t *testing.T) {
	if got := ConcatenateBytes(nil); len(got) != 0 {
		t.Errorf("空输入 = %v", got)
	}
	if got := ConcatenateBytes([][]byte{{}, {}, {}}); len(got) != 0 {
		t.Errorf("空数据 = %v", got)
	}
	got := ConcatenateBytes([][]byte{{0, 1}, {}, {4, 5}})
	if !bytes.Equal(got, []byte{0, 1, 4, 5}) {
		t.Errorf("拼接结果 = %v", got)
	}
}

func TestTrimEndl(t *testing.T) {
	if got := TrimEndl("  text \r\n"); got != "  text " {
		t.Errorf("TrimEndl = %q", got)
	}
}
