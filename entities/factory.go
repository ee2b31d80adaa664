package entities

import (
	"github.com/zooyer/dxftag/core"
)

// DXFObject 是可以从标签加载的对象
type DXFObject interface {
	Entity
	Type() string
	Load(tags []core.Tag) error
	base() *Object
}

// Bounded 带几何范围的对象
type Bounded interface {
	BBox() core.BBox
}

// ObjectFactory 定义了如何从标签流中创建一个对象
type ObjectFactory func() DXFObject

var registry = map[string]ObjectFactory{}

// Register 允许以后动态扩展新的对象类型
func Register(typeName string, factory ObjectFactory) {
	registry[typeName] = factory
}

// CreateObject 根据名称生产对应的结构体，未注册的类型使用通用的 Object
func CreateObject(typeName string) DXFObject {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return NewObject(typeName)
}

// BaseObject 返回嵌入的通用 Object
func BaseObject(o DXFObject) *Object {
	return o.base()
}
