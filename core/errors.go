package core

import (
	"errors"
	"fmt"
)

// ErrorKind 加载错误类型
type ErrorKind int

const (
	GenericError ErrorKind = iota + 100
	InvalidGroupCode
	InvalidInteger
	InvalidReal
	InvalidBinary
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidGroupCode:
		return "invalid group code"
	case InvalidInteger:
		return "invalid integer"
	case InvalidReal:
		return "invalid real"
	case InvalidBinary:
		return "invalid binary"
	default:
		return "generic error"
	}
}

// ParseError 只做记录，不会中断调用方
type ParseError struct {
	Kind    ErrorKind
	Line    int // 从 1 开始
	Message string
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %s", e.Line, e.Kind, e.Message)
}

// ErrTypeMismatch 读取了与标签类型不符的值
var ErrTypeMismatch = errors.New("dxf: tag type mismatch")

// TypeMismatchError 记录期望类型与实际类型
type TypeMismatchError struct {
	Code GroupCode
	Want TagType
	Got  TagType
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("dxf: tag (%d) has %s value, not %s", e.Code, e.Got, e.Want)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
