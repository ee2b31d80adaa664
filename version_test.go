package dxf

import "testing"

func TestParseVersion(t *testing.T) {
	tests := map[string]Version{
		"AC1004":   R9,
		"AC1009":   R12,
		"AC1032":   R2018,
		" ac1015 ": R2000,
		// 未知版本按 R12 处理
		"XXX": R12,
	}
	for s, want := range tests {
		if got := ParseVersion(s); got != want {
			t.Errorf("ParseVersion(%q) = %s, 期望 %s", s, got, want)
		}
	}
}

func TestVersion_ACADVER(t *testing.T) {
	tests := map[Version]string{R9: "AC1004", R12: "AC1009", R2018: "AC1032"}
	for v, want := range tests {
		if got := v.ACADVER(); got != want {
			t.Errorf("%s.ACADVER() = %s, 期望 %s", v, got, want)
		}
	}
	if R2004.UsesUTF8() || !R2007.UsesUTF8() {
		t.Errorf("UsesUTF8 判断错误")
	}
}
