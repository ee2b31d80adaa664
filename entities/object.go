package entities

import (
	"errors"
	"strconv"
	"strings"

	"github.com/zooyer/dxftag/core"
)

// Handle 文档内唯一的实体标识，0 表示未分配
type Handle uint64

func (h Handle) String() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}

// ParseHandle 解析十六进制句柄字符串，如 "1F"
func ParseHandle(s string) (Handle, bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 16, 64)
	if err != nil {
		return 0, false
	}
	return Handle(v), true
}

// ErrHandleAlreadySet 句柄只能分配一次
var ErrHandleAlreadySet = errors.New("dxf: handle already set")

// Entity 句柄表只要求实体提供句柄
type Entity interface {
	Handle() Handle
}

const statusErased = 1

// Object 是文档中所有 DXF 对象的基础。
// 对象不会被销毁，删除只是设置状态标记。
type Object struct {
	TypeName string
	Tags     []core.Tag // 加载时的原始标签

	status uint
	handle Handle
	owner  Handle
}

func NewObject(typeName string) *Object {
	return &Object{TypeName: typeName}
}

func (o *Object) Type() string { return o.TypeName }

func (o *Object) Handle() Handle { return o.handle }

// SetHandle 设置 0 不算分配，已分配后不能再修改
func (o *Object) SetHandle(h Handle) error {
	if o.handle != 0 {
		return ErrHandleAlreadySet
	}
	o.handle = h
	return nil
}

// Owner 0 表示没有所有者
func (o *Object) Owner() Handle { return o.owner }

func (o *Object) SetOwner(h Handle) { o.owner = h }

// Erase 只设置删除标记，所有属性仍然可用
func (o *Object) Erase() { o.status |= statusErased }

func (o *Object) IsErased() bool { return o.status&statusErased != 0 }

func (o *Object) IsAlive() bool { return !o.IsErased() }

func (o *Object) base() *Object { return o }

// Load 读取句柄（5，DIMSTYLE 为 105）和所有者（330），并保留所有标签。
// 102 {ACAD_REACTORS ... } 等扩展组中的 330 不是所有者。
func (o *Object) Load(tags []core.Tag) error {
	var (
		group    bool
		hasOwner bool
	)
	for _, tag := range tags {
		switch tag.GroupCode() {
		case 102:
			s, _ := tag.Text()
			group = strings.HasPrefix(s, "{")
		case 5, 105:
			s, _ := tag.Text()
			if h, ok := ParseHandle(s); ok {
				if err := o.SetHandle(h); err != nil {
					return err
				}
			}
		case 330:
			if group || hasOwner {
				continue
			}
			s, _ := tag.Text()
			if h, ok := ParseHandle(s); ok {
				o.SetOwner(h)
				hasOwner = true
			}
		}
	}
	o.Tags = tags
	return nil
}
