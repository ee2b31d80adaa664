package core

import "fmt"

// Tag 代表 DXF 中的一组标签对。
//
// 实现类型是固定的：TextTag、IntegerTag、RealTag、Vec3Tag、BinaryTag、ErrorTag，
// 可以用 type switch 穷举。读取与类型不符的值会返回 ErrTypeMismatch。
type Tag interface {
	GroupCode() GroupCode
	Type() TagType

	IsErrorTag() bool
	IsUndefined() bool
	HasTextValue() bool
	HasIntegerValue() bool
	HasRealValue() bool
	HasVec3Value() bool
	Export2D() bool

	// IsStructTag 不需要先判断类型，非文本标签直接返回 false
	IsStructTag(code GroupCode, s string) bool

	Text() (string, error)
	Integer() (int64, error)
	Real() (float64, error)
	Vec3() (Vec3, error)
	Binary() ([]byte, error)

	String() string

	tag()
}

type base struct {
	code GroupCode
	typ  TagType
}

func (b base) tag() {}

func (b base) GroupCode() GroupCode { return b.code }

func (b base) Type() TagType { return b.typ }

func (b base) IsErrorTag() bool { return b.code == Error }

func (b base) IsUndefined() bool { return b.typ == Undefined }

func (b base) HasTextValue() bool { return b.typ == Text }

func (b base) HasIntegerValue() bool { return b.typ == Integer }

func (b base) HasRealValue() bool { return b.typ == Real }

// HasVec3Value 对 Vec2 也返回 true
func (b base) HasVec3Value() bool { return b.typ == Vec3Type || b.typ == Vec2Type }

// Export2D 标记加载时没有 z 轴的向量，写出时应保持二维
func (b base) Export2D() bool { return b.typ == Vec2Type }

func (b base) IsStructTag(GroupCode, string) bool { return false }

func (b base) mismatch(want TagType) error {
	return &TypeMismatchError{Code: b.code, Want: want, Got: b.typ}
}

func (b base) Text() (string, error) { return "", b.mismatch(Text) }

func (b base) Integer() (int64, error) { return 0, b.mismatch(Integer) }

func (b base) Real() (float64, error) { return 0, b.mismatch(Real) }

func (b base) Vec3() (Vec3, error) { return Vec3{}, b.mismatch(Vec3Type) }

func (b base) Binary() ([]byte, error) { return nil, b.mismatch(Binary) }

// TextTag 保存原始字符串（未解码的 cp1252、utf8 ...），不含换行符。
// 除了组码 0 的结构标签，前后空白都会保留，有些文本（如标注文字）需要它们。
type TextTag struct {
	base
	value string
}

func NewTextTag(code GroupCode, value string) TextTag {
	return TextTag{base: base{code: code, typ: Text}, value: value}
}

// Text 加载器的 EOF 标签类型为 Undefined，不能按文本读取
func (t TextTag) Text() (string, error) {
	if t.typ != Text {
		return "", t.mismatch(Text)
	}
	return t.value, nil
}

// Value 直接返回字符串
func (t TextTag) Value() string { return t.value }

func (t TextTag) IsStructTag(code GroupCode, s string) bool {
	return t.typ == Text && t.code == code && t.value == s
}

func (t TextTag) String() string {
	return fmt.Sprintf("(%d, %s)", t.code, t.value)
}

// IntegerTag 整数按 int64 存储
type IntegerTag struct {
	base
	value int64
}

func NewIntegerTag(code GroupCode, value int64) IntegerTag {
	return IntegerTag{base: base{code: code, typ: Integer}, value: value}
}

func (t IntegerTag) Integer() (int64, error) { return t.value, nil }

func (t IntegerTag) String() string {
	return fmt.Sprintf("(%d, %d)", t.code, t.value)
}

// RealTag 浮点数按 float64 存储
type RealTag struct {
	base
	value float64
}

func NewRealTag(code GroupCode, value float64) RealTag {
	return RealTag{base: base{code: code, typ: Real}, value: value}
}

func (t RealTag) Real() (float64, error) { return t.value, nil }

func (t RealTag) String() string {
	return fmt.Sprintf("(%d, %g)", t.code, t.value)
}

// Vec3Tag 由 2 个或 3 个连续的坐标轴标签组成。
// 二维加载的点类型为 Vec2Type，z 固定为 0。
type Vec3Tag struct {
	base
	value Vec3
}

func NewVec3Tag(code GroupCode, x, y, z float64) Vec3Tag {
	return Vec3Tag{base: base{code: code, typ: Vec3Type}, value: Vec3{X: x, Y: y, Z: z}}
}

func NewVec2Tag(code GroupCode, x, y float64) Vec3Tag {
	return Vec3Tag{base: base{code: code, typ: Vec2Type}, value: Vec3{X: x, Y: y}}
}

func (t Vec3Tag) Vec3() (Vec3, error) { return t.value, nil }

func (t Vec3Tag) String() string {
	if t.Export2D() {
		return fmt.Sprintf("(%d, (%g, %g))", t.code, t.value.X, t.value.Y)
	}
	return fmt.Sprintf("(%d, (%g, %g, %g))", t.code, t.value.X, t.value.Y, t.value.Z)
}

// BinaryTag 组码 310-319、1004 的十六进制数据解码后的结果
type BinaryTag struct {
	base
	value []byte
}

func NewBinaryTag(code GroupCode, value []byte) BinaryTag {
	return BinaryTag{base: base{code: code, typ: Binary}, value: value}
}

func (t BinaryTag) Binary() ([]byte, error) { return t.value, nil }

func (t BinaryTag) String() string {
	return fmt.Sprintf("(%d, %s)", t.code, Hexlify(t.value))
}

// ErrorTag 表示错误或 EOF，不携带任何值
type ErrorTag struct {
	base
}

func NewErrorTag() ErrorTag {
	return ErrorTag{base: base{code: Error, typ: Undefined}}
}

func (t ErrorTag) String() string {
	return "(-1, <error>)"
}
