package dxf

import "strings"

// Version DXF 版本，对应 $ACADVER
type Version int

const (
	R9 Version = iota
	R10
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018
)

var versions = []struct {
	version Version
	name    string
	acadver string
}{
	{R9, "R9", "AC1004"},
	{R10, "R10", "AC1006"},
	{R12, "R12", "AC1009"},
	{R13, "R13", "AC1012"},
	{R14, "R14", "AC1014"},
	{R2000, "R2000", "AC1015"},
	{R2004, "R2004", "AC1018"},
	{R2007, "R2007", "AC1021"},
	{R2010, "R2010", "AC1024"},
	{R2013, "R2013", "AC1027"},
	{R2018, "R2018", "AC1032"},
}

// ParseVersion 未知版本按 R12 处理
func ParseVersion(acadver string) Version {
	acadver = strings.ToUpper(strings.TrimSpace(acadver))
	for _, v := range versions {
		if v.acadver == acadver {
			return v.version
		}
	}
	return R12
}

// ACADVER 返回 $ACADVER 的值，如 "AC1032"
func (v Version) ACADVER() string {
	for _, item := range versions {
		if item.version == v {
			return item.acadver
		}
	}
	return "AC1009"
}

func (v Version) String() string {
	for _, item := range versions {
		if item.version == v {
			return item.name
		}
	}
	return "R12"
}

// UsesUTF8 R2007 开始 DXF 文件使用 UTF-8，之前由 $DWGCODEPAGE 决定
func (v Version) UsesUTF8() bool {
	return v >= R2007
}
