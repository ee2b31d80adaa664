package entities

// ResourceType 按名称引用的资源类型
type ResourceType int

const (
	Layer ResourceType = iota
	Linetype
	TextStyle
	DimStyle
	Block
)

type refKind uint8

const (
	refNone refKind = iota
	refHandle
	refName
	refPointer
)

// Reference 加载阶段按句柄或名称保存引用，加载后解析为实体指针
type Reference struct {
	kind     refKind
	handle   Handle
	resource ResourceType
	name     string
	entity   Entity
}

func NoneReference() Reference {
	return Reference{}
}

func HandleReference(h Handle) Reference {
	return Reference{kind: refHandle, handle: h}
}

func NameReference(t ResourceType, name string) Reference {
	return Reference{kind: refName, resource: t, name: name}
}

// PointerReference 保证被引用的实体存在（可能已被删除）
func PointerReference(e Entity) Reference {
	if e == nil {
		panic("dxf: nil entity reference")
	}
	return Reference{kind: refPointer, entity: e}
}

func (r Reference) IsNone() bool { return r.kind == refNone }

func (r Reference) HasPointer() bool { return r.kind == refPointer }

// HasHandle 指针引用也可以提供句柄
func (r Reference) HasHandle() bool { return r.kind == refHandle || r.kind == refPointer }

func (r Reference) HasName() bool { return r.kind == refName }

func (r Reference) Handle() (Handle, bool) {
	switch r.kind {
	case refHandle:
		return r.handle, true
	case refPointer:
		return r.entity.Handle(), true
	}
	return 0, false
}

func (r Reference) Name() (ResourceType, string, bool) {
	return r.resource, r.name, r.kind == refName
}

func (r Reference) Entity() (Entity, bool) {
	return r.entity, r.kind == refPointer
}

// Resolve 把句柄引用解析为指针引用，找不到时返回 false。
// 名称引用需要资源表，这里不处理。
func (r Reference) Resolve(table *HandleTable) (Reference, bool) {
	switch r.kind {
	case refPointer:
		return r, true
	case refHandle:
		if e := table.Get(r.handle, nil); e != nil {
			return PointerReference(e), true
		}
	}
	return r, false
}
