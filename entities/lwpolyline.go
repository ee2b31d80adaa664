package entities

import (
	"github.com/zooyer/dxftag/core"
)

// LWPolyline 顶点只有 x、y，高度由组码 38 统一给出
type LWPolyline struct {
	Object
	Elevation float64
	Flags     int64
	Vertices  []core.Vec3
}

func init() {
	Register("LWPOLYLINE", func() DXFObject { return &LWPolyline{Object: Object{TypeName: "LWPOLYLINE"}} })
}

func (l *LWPolyline) Load(tags []core.Tag) error {
	if err := l.Object.Load(tags); err != nil {
		return err
	}
	for _, t := range tags {
		switch t.GroupCode() {
		case 10:
			if v, err := t.Vec3(); err == nil {
				l.Vertices = append(l.Vertices, v)
			}
		case 38:
			if f, err := t.Real(); err == nil {
				l.Elevation = f
			}
		case 70:
			if i, err := t.Integer(); err == nil {
				l.Flags = i
			}
		}
	}
	for i := range l.Vertices {
		l.Vertices[i].Z = l.Elevation
	}
	return nil
}

// IsClosed 组码 70 的第 1 位
func (l *LWPolyline) IsClosed() bool {
	return l.Flags&1 != 0
}

func (l *LWPolyline) BBox() core.BBox {
	var box core.BBox
	for _, v := range l.Vertices {
		box.Extend(v)
	}
	return box
}
