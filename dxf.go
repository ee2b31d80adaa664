package dxf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxftag/core"
	"github.com/zooyer/dxftag/entities"
)

// Document 把标签流整理为 HEADER 变量和带句柄的对象
type Document struct {
	Version Version
	Header  map[string][]core.Tag
	Objects []entities.DXFObject
	Handles *entities.HandleTable

	LoaderErrors []core.ParseError // 行读取错误，出现后文件不再可信
	ValueErrors  []core.ParseError // 单个值转换失败
	Errors       []core.ParseError // 文档层的错误，如重复的句柄
}

// Object 按句柄查找
func (d *Document) Object(h entities.Handle) (entities.DXFObject, bool) {
	e := d.Handles.Get(h, nil)
	if e == nil {
		return nil, false
	}
	obj, ok := e.(entities.DXFObject)
	return obj, ok
}

// HeaderVar 返回 HEADER 变量的第一个值
func (d *Document) HeaderVar(name string) (core.Tag, bool) {
	tags := d.Header[name]
	if len(tags) == 0 {
		return nil, false
	}
	return tags[0], true
}

type parser struct {
	doc     *Document
	c       *core.TagCompiler
	section string
	header  string

	record     string
	recordLine int
	tags       []core.Tag
}

func (p *parser) flush() {
	if p.record == "" {
		return
	}
	defer func() {
		p.record, p.tags = "", nil
	}()

	obj := entities.CreateObject(p.record)
	if err := obj.Load(p.tags); err != nil {
		p.logError(fmt.Sprintf("%s: %v", p.record, err))
	}
	p.doc.Objects = append(p.doc.Objects, obj)

	h := obj.Handle()
	if h == 0 {
		return
	}
	if p.doc.Handles.Has(h) {
		p.logError(fmt.Sprintf("%s: duplicate handle %s", p.record, h))
		return
	}
	p.doc.Handles.Store(obj)
}

func (p *parser) logError(msg string) {
	p.doc.Errors = append(p.doc.Errors, core.ParseError{
		Kind:    core.GenericError,
		Line:    p.recordLine,
		Message: msg,
	})
}

func (p *parser) parse() {
	for !p.c.EOF() {
		line := p.c.LineNumber()
		tag := p.c.Next()
		if tag.IsErrorTag() {
			continue
		}

		if tag.GroupCode() == core.Structure {
			p.flush()
			name, _ := tag.Text()
			switch strings.ToUpper(name) {
			case "SECTION":
				if p.c.Peek().GroupCode() == 2 {
					s, _ := p.c.TextTag().Text()
					p.section = strings.ToUpper(s)
				}
				p.header = ""
			case "ENDSEC":
				p.section = ""
			case "EOF":
				return
			default:
				p.record, p.recordLine = name, line
			}
			continue
		}

		switch {
		case p.record != "":
			p.tags = append(p.tags, tag)
		case p.section == "HEADER" && tag.GroupCode() == 9:
			p.header, _ = tag.Text()
		case p.section == "HEADER" && p.header != "":
			p.doc.Header[p.header] = append(p.doc.Header[p.header], tag)
		}
	}
	p.flush()
}

// Open 打开 DXF 文件
func Open(filename string, opts ...core.Option) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file, opts...)
}

// Load 读取整个标签流。行读取出错时仍然返回已加载的内容，
// error 为第一个行读取错误。
func Load(reader io.Reader, opts ...core.Option) (*Document, error) {
	var (
		compiler = core.NewTagCompilerFromReader(reader, opts...)
		document = &Document{
			Version: R12,
			Header:  make(map[string][]core.Tag),
			Objects: make([]entities.DXFObject, 0, 1024),
			Handles: entities.NewHandleTable(entities.DefaultBucketExponent),
		}
	)

	p := &parser{doc: document, c: compiler}
	p.parse()

	if tag, ok := document.HeaderVar("$ACADVER"); ok {
		if s, err := tag.Text(); err == nil {
			document.Version = ParseVersion(s)
		}
	}

	document.LoaderErrors = compiler.LoaderErrors()
	document.ValueErrors = compiler.Errors()
	if len(document.LoaderErrors) > 0 {
		return document, document.LoaderErrors[0]
	}
	return document, nil
}
