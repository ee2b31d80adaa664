package core

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

type options struct {
	logger  *slog.Logger
	decoder encoding.Encoding
}

// Option 加载器配置
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLogger 记录的每一个 ParseError 都会以 Debug 级别输出
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEncoding 按行切分之前先解码输入流，nil 表示不解码
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) {
		o.decoder = enc
	}
}

// LookupEncoding 支持 WHATWG 名称（cp1252、gbk ...）和 $DWGCODEPAGE 的 ANSI_xxxx 写法
func LookupEncoding(name string) (encoding.Encoding, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}
	if page, ok := strings.CutPrefix(strings.ToUpper(name), "ANSI_"); ok {
		switch page {
		case "936":
			name = "gbk"
		case "950":
			name = "big5"
		case "932":
			name = "shift_jis"
		case "949":
			name = "euc-kr"
		default:
			name = "windows-" + page
		}
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("dxf: unknown encoding %q: %w", name, err)
	}
	return enc, nil
}

func (o options) wrap(r io.Reader) io.Reader {
	if o.decoder == nil {
		return r
	}
	return transform.NewReader(r, o.decoder.NewDecoder())
}
