package core

import (
	"math"
	"strconv"
	"strings"
)

// 这些转换函数只为加载 DXF 标签优化，不是通用函数：
// 都不会失败，尽可能多地读取合法前缀，读不到数字时返回 false。

// isSpace 与 C 的 isspace 一致
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func trimLeftSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// TrimEndl 只去掉行尾的 <CR><LF>
func TrimEndl(s string) string {
	return strings.TrimRight(s, "\r\n")
}

// SafeStrToInt64 读取整数前缀，"99.1" → 99，"1e2" → 1，溢出返回 false
func SafeStrToInt64(s string) (int64, bool) {
	s = trimLeftSpace(s)

	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == start {
		return 0, false
	}

	v, err := strconv.ParseInt(s[:i], 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// realPrefix 返回最长的浮点数字面量前缀长度，没有数字返回 0
func realPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}

	// 指数部分必须至少有一位数字，否则不属于字面量
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		k := j
		for k < len(s) && isDigit(s[k]) {
			k++
		}
		if k > j {
			i = k
		}
	}

	return i
}

// SafeStrToReal 读取浮点数前缀，超出 float64 范围返回 false
func SafeStrToReal(s string) (float64, bool) {
	s = trimLeftSpace(s)

	n := realPrefix(s)
	if n == 0 {
		return 0, false
	}

	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// SafeGroupCode 解析组码，非法或超出 [0, 1071] 时返回 Error
func SafeGroupCode(s string) GroupCode {
	code, ok := SafeStrToInt64(s)
	if !ok || !IsValidGroupCode(code) {
		return Error
	}
	return GroupCode(code)
}

const hexDigits = "0123456789ABCDEF"

// Hexlify 二进制数据转为连续的大写十六进制字符串，如 {0xfe, 0xfe} → "FEFE"
func Hexlify(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 2)
	for _, c := range data {
		b.WriteByte(hexDigits[c>>4])
		b.WriteByte(hexDigits[c&0x0f])
	}
	return b.String()
}

func nibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}

// Unhexlify 十六进制字符串转为二进制数据。
// 两端空白会被去掉，中间出现任何非十六进制字符返回 false，
// 奇数长度时忽略最后一个字符。
func Unhexlify(s string) ([]byte, bool) {
	s = strings.TrimSpace(s)

	data := make([]byte, 0, len(s)/2)
	var high byte
	for i := 0; i < len(s); i++ {
		n, ok := nibble(s[i])
		if !ok {
			return nil, false
		}
		if i%2 == 0 {
			high = n << 4
		} else {
			data = append(data, high|n)
		}
	}
	return data, true
}

// ConcatenateBytes 拼接多段二进制数据，用于合并连续的 310 标签
func ConcatenateBytes(chunks [][]byte) []byte {
	size := 0
	for _, c := range chunks {
		size += len(c)
	}

	data := make([]byte, 0, size)
	for _, c := range chunks {
		data = append(data, c...)
	}
	return data
}
