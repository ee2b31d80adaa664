package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// MaxLineBuffer 组码 0-9 的值最多 2049 个单字节字符，再加上 <CR><LF>
const MaxLineBuffer = 2051

// BasicLoader 把输入流切分为 (组码, 字符串) 标签对，每次读取两行。
// 每个 BasicLoader 有自己的缓冲区，可以并行加载多个文件。
type BasicLoader struct {
	reader *bufio.Reader
	closer io.Closer // 只有自己打开的流才需要关闭

	current    TextTag // 到达 EOF 后为错误标签
	lineNumber int
	done       bool
	errors     []ParseError
	logger     *slog.Logger
}

var errorSentinel = TextTag{base: base{code: Error, typ: Undefined}}

// NewBasicLoader 从任意输入流加载，调用方负责关闭 r
func NewBasicLoader(r io.Reader, opts ...Option) *BasicLoader {
	o := newOptions(opts)
	l := &BasicLoader{
		reader: bufio.NewReaderSize(o.wrap(r), MaxLineBuffer),
		logger: o.logger,
	}
	l.current = l.loadNext()
	return l
}

func NewBasicLoaderFromString(s string, opts ...Option) *BasicLoader {
	return NewBasicLoader(strings.NewReader(s), opts...)
}

// OpenBasicLoader 打开文件加载，Close 时关闭文件
func OpenBasicLoader(filename string, opts ...Option) (*BasicLoader, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	l := NewBasicLoader(file, opts...)
	l.closer = file
	return l, nil
}

// Close 只关闭自己打开的流，可以重复调用
func (l *BasicLoader) Close() error {
	if l.closer == nil {
		return nil
	}
	err := l.closer.Close()
	l.closer = nil
	return err
}

// Peek 返回当前标签，不前进
func (l *BasicLoader) Peek() TextTag {
	return l.current
}

// Get 返回当前标签并加载下一个
func (l *BasicLoader) Get() TextTag {
	tag := l.current
	if !l.IsEmpty() {
		l.current = l.loadNext()
	}
	return tag
}

// IsEmpty 当前标签是错误标签时为 true，之后不会再有数据
func (l *BasicLoader) IsEmpty() bool {
	return l.current.IsErrorTag()
}

func (l *BasicLoader) LineNumber() int { return l.lineNumber }

func (l *BasicLoader) HasErrors() bool { return len(l.errors) > 0 }

func (l *BasicLoader) Errors() []ParseError { return l.errors }

func (l *BasicLoader) logError(kind ErrorKind, line int, msg string) {
	e := ParseError{Kind: kind, Line: line, Message: msg}
	l.errors = append(l.errors, e)
	l.logger.Debug("dxf tag loader", "line", line, "kind", kind.String(), "msg", msg)
}

// readLine 读取一个物理行，流结束或读取失败返回 false
func (l *BasicLoader) readLine(value bool) (string, bool) {
	if l.done {
		return "", false
	}

	line, err := l.reader.ReadString('\n')
	if err == nil || (errors.Is(err, io.EOF) && line != "") {
		l.lineNumber++
		return line, true
	}

	l.done = true
	switch {
	case !errors.Is(err, io.EOF):
		l.logError(GenericError, l.lineNumber+1, err.Error())
	case value:
		l.logError(GenericError, l.lineNumber+1, "unexpected end of stream, missing value line")
	}
	return "", false
}

func (l *BasicLoader) loadNext() TextTag {
	for {
		line, ok := l.readLine(false)
		if !ok {
			return errorSentinel
		}

		code := SafeGroupCode(line)
		if code == Error {
			// 不尝试重新同步，直接结束
			l.logError(InvalidGroupCode, l.lineNumber, fmt.Sprintf("invalid group code %q", strings.TrimSpace(line)))
			l.done = true
			return errorSentinel
		}

		value, ok := l.readLine(true)
		if !ok {
			return errorSentinel
		}

		if code == Comment {
			continue
		}

		if code == Structure {
			// 结构标签两端的空白没有意义
			value = strings.TrimSpace(value)
		} else {
			// 去掉行尾的换行符，但保留 Value 开头的空格（DXF 规范要求）
			value = TrimEndl(value)
		}

		return NewTextTag(code, value)
	}
}
