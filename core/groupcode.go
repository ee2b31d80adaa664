package core

import "sync"

// GroupCode DXF 组码，合法范围 [0, 1071]
type GroupCode int16

const (
	Error     GroupCode = -1  // 错误/EOF 标记
	Structure GroupCode = 0   // 结构标签，如 (0, SECTION)
	Comment   GroupCode = 999 // 注释标签，加载时丢弃
)

// GroupCodeCount 由 DXF 参考手册定义
const GroupCodeCount = 1072

// TagType 标签值类型
type TagType uint8

const (
	Undefined TagType = iota // 未定义，同时表示错误标签
	Text
	Integer
	Real
	Vec3Type
	Vec2Type // 按二维点加载的向量，值仍然以 Vec3 存储
	Binary   // 仅由 TagCompiler.BinaryTag 产生，Classify 不会返回
)

func (t TagType) String() string {
	switch t {
	case Text:
		return "text"
	case Integer:
		return "integer"
	case Real:
		return "real"
	case Vec3Type:
		return "vec3"
	case Vec2Type:
		return "vec2"
	case Binary:
		return "binary"
	default:
		return "undefined"
	}
}

// IsValidGroupCode 判断组码是否在 [0, 1071] 内
func IsValidGroupCode(code int64) bool {
	return code >= 0 && code < GroupCodeCount
}

// IsBinaryCode 二进制数据标签：310-319 和 1004
func IsBinaryCode(code GroupCode) bool {
	return (code >= 310 && code < 320) || code == 1004
}

func classify(code GroupCode) TagType {
	if !IsValidGroupCode(int64(code)) {
		return Undefined
	}

	switch {
	// 只有 x 轴组码会触发向量收集，y/z 轴单独出现时按 Real 处理
	case (code >= 10 && code < 19) ||
		(code >= 110 && code < 113) ||
		(code >= 210 && code < 214) ||
		(code >= 1010 && code < 1014):
		return Vec3Type
	case (code >= 19 && code < 60) ||
		(code >= 113 && code < 150) ||
		(code >= 214 && code < 240) ||
		(code >= 460 && code < 470) ||
		(code >= 1014 && code < 1060):
		return Real
	case (code >= 60 && code < 80) ||
		(code >= 90 && code < 100) ||
		(code >= 160 && code < 180) ||
		(code >= 270 && code < 290) ||
		(code >= 370 && code < 390) ||
		(code >= 400 && code < 410) ||
		(code >= 420 && code < 430) ||
		(code >= 440 && code < 460) ||
		(code >= 1060 && code < 1072):
		return Integer
	}

	return Text
}

// TypeTable 组码到标签类型的查找表
type TypeTable struct {
	types [GroupCodeCount]TagType
}

// NewTypeTable 创建并填充完整的查找表
func NewTypeTable() *TypeTable {
	var table TypeTable
	for code := range GroupCodeCount {
		table.types[code] = classify(GroupCode(code))
	}
	return &table
}

// Classify 返回组码对应的标签类型，超出范围返回 Undefined
func (t *TypeTable) Classify(code GroupCode) TagType {
	if !IsValidGroupCode(int64(code)) {
		return Undefined
	}
	return t.types[code]
}

var defaultTypes = sync.OnceValue(NewTypeTable)

// Classify 使用默认查找表
func Classify(code GroupCode) TagType {
	return defaultTypes().Classify(code)
}
