package core

import (
	"fmt"
	"io"
	"log/slog"
)

// TagCompiler 按组码类型把 BasicLoader 输出的字符串标签转换为带类型的标签。
//
// 读取失败（类型不符或数值非法）时返回 ErrorTag 且不前进，
// 调用方必须自己调用 Skip 跳过，否则会一直读到同一个标签。
type TagCompiler struct {
	loader *BasicLoader
	types  *TypeTable

	current    TextTag
	lineNumber int
	errors     []ParseError // 只记录值转换错误，行读取错误在 BasicLoader 中
	logger     *slog.Logger
}

// NewTagCompiler 接管 loader，之后不要再直接使用 loader
func NewTagCompiler(loader *BasicLoader, opts ...Option) *TagCompiler {
	o := newOptions(opts)
	c := &TagCompiler{
		loader: loader,
		types:  defaultTypes(),
		logger: o.logger,
	}
	c.loadNextTag()
	return c
}

// NewTagCompilerFromReader 等价于 NewTagCompiler(NewBasicLoader(r, opts...), opts...)
func NewTagCompilerFromReader(r io.Reader, opts ...Option) *TagCompiler {
	return NewTagCompiler(NewBasicLoader(r, opts...), opts...)
}

// Close 关闭底层的 BasicLoader
func (c *TagCompiler) Close() error {
	return c.loader.Close()
}

func (c *TagCompiler) loadNextTag() {
	c.lineNumber = c.loader.LineNumber()
	c.current = c.loader.Get()
}

// DetectCurrentType 当前标签按组码分类的类型，EOF 时为 Undefined
func (c *TagCompiler) DetectCurrentType() TagType {
	return c.types.Classify(c.current.GroupCode())
}

// Peek 当前未转换的字符串标签
func (c *TagCompiler) Peek() TextTag {
	return c.current
}

func (c *TagCompiler) EOF() bool {
	return c.current.IsErrorTag()
}

func (c *TagCompiler) IsEmpty() bool {
	return c.EOF()
}

// LineNumber 当前标签的值所在的行号
func (c *TagCompiler) LineNumber() int { return c.lineNumber }

func (c *TagCompiler) HasErrors() bool { return len(c.errors) > 0 }

func (c *TagCompiler) Errors() []ParseError { return c.errors }

// LoaderErrors 底层 BasicLoader 记录的行读取错误
func (c *TagCompiler) LoaderErrors() []ParseError { return c.loader.Errors() }

func (c *TagCompiler) logError(kind ErrorKind, msg string) {
	e := ParseError{Kind: kind, Line: c.LineNumber(), Message: msg}
	c.errors = append(c.errors, e)
	c.logger.Debug("dxf tag compiler", "line", e.Line, "kind", kind.String(), "code", c.current.GroupCode(), "msg", msg)
}

// Skip 丢弃当前标签
func (c *TagCompiler) Skip() {
	if !c.EOF() {
		c.loadNextTag()
	}
}

// TextTag 任何标签都可以按文本读取
func (c *TagCompiler) TextTag() Tag {
	if c.EOF() {
		return NewErrorTag()
	}
	tag := c.current
	c.loadNextTag()
	return tag
}

func (c *TagCompiler) IntegerTag() Tag {
	if c.DetectCurrentType() != Integer {
		return NewErrorTag()
	}
	v, ok := SafeStrToInt64(c.current.value)
	if !ok {
		c.logError(InvalidInteger, fmt.Sprintf("invalid integer value %q", c.current.value))
		return NewErrorTag()
	}
	tag := NewIntegerTag(c.current.GroupCode(), v)
	c.loadNextTag()
	return tag
}

func (c *TagCompiler) RealTag() Tag {
	if c.DetectCurrentType() != Real {
		return NewErrorTag()
	}
	v, ok := c.readReal()
	if !ok {
		return NewErrorTag()
	}
	tag := NewRealTag(c.current.GroupCode(), v)
	c.loadNextTag()
	return tag
}

// readReal 按浮点数读取当前标签，失败时记录 InvalidReal
func (c *TagCompiler) readReal() (float64, bool) {
	v, ok := SafeStrToReal(c.current.value)
	if !ok {
		c.logError(InvalidReal, fmt.Sprintf("invalid real value %q", c.current.value))
	}
	return v, ok
}

// Vec3Tag 收集按 x、y、z 顺序连续出现的坐标轴标签（组码 n、n+10、n+20）。
//
// 只有 x 轴时返回组码 n 的 RealTag，没有 z 轴时返回 Vec2 标签；
// 打断序列的标签不会被消耗，留给下一次读取。
// y 或 z 转换失败时前面的坐标轴已被消耗，返回 ErrorTag 并停在失败的标签上。
func (c *TagCompiler) Vec3Tag() Tag {
	if c.DetectCurrentType() != Vec3Type {
		return NewErrorTag()
	}

	code := c.current.GroupCode()
	x, ok := c.readReal()
	if !ok {
		return NewErrorTag()
	}
	c.loadNextTag()

	if c.current.GroupCode() != code+10 {
		// 坐标轴顺序不对或不完整，由调用方决定如何处理
		return NewRealTag(code, x)
	}
	y, ok := c.readReal()
	if !ok {
		return NewErrorTag()
	}
	c.loadNextTag()

	if c.current.GroupCode() != code+20 {
		return NewVec2Tag(code, x, y)
	}
	z, ok := c.readReal()
	if !ok {
		return NewErrorTag()
	}
	c.loadNextTag()

	return NewVec3Tag(code, x, y, z)
}

// BinaryTag 读取十六进制编码的二进制标签
func (c *TagCompiler) BinaryTag() Tag {
	if !IsBinaryCode(c.current.GroupCode()) {
		return NewErrorTag()
	}
	data, ok := Unhexlify(c.current.value)
	if !ok {
		c.logError(InvalidBinary, fmt.Sprintf("invalid binary value %q", c.current.value))
		return NewErrorTag()
	}
	tag := NewBinaryTag(c.current.GroupCode(), data)
	c.loadNextTag()
	return tag
}

// Next 按当前组码的类型读取下一个标签。
// 值非法时记录错误并跳过该标签，EOF 时返回 ErrorTag。
func (c *TagCompiler) Next() Tag {
	if c.EOF() {
		return NewErrorTag()
	}

	var tag Tag
	switch {
	case IsBinaryCode(c.current.GroupCode()):
		tag = c.BinaryTag()
	default:
		switch c.DetectCurrentType() {
		case Integer:
			tag = c.IntegerTag()
		case Real:
			tag = c.RealTag()
		case Vec3Type:
			tag = c.Vec3Tag()
		default:
			tag = c.TextTag()
		}
	}

	if tag.IsErrorTag() {
		c.Skip()
	}
	return tag
}

// Tags 读取剩余的所有标签，跳过非法的值
func (c *TagCompiler) Tags() []Tag {
	var tags []Tag
	for !c.EOF() {
		if tag := c.Next(); !tag.IsErrorTag() {
			tags = append(tags, tag)
		}
	}
	return tags
}

// LoadTags 从输入流读取所有带类型的标签，返回行读取错误和值转换错误
func LoadTags(r io.Reader, opts ...Option) (tags []Tag, loaderErrors, valueErrors []ParseError) {
	c := NewTagCompilerFromReader(r, opts...)
	tags = c.Tags()
	return tags, c.LoaderErrors(), c.Errors()
}
