package entities

import (
	"github.com/zooyer/dxftag/core"
)

type Line struct {
	Object
	Start, End core.Vec3
}

func init() {
	Register("LINE", func() DXFObject { return &Line{Object: Object{TypeName: "LINE"}} })
}

func (l *Line) Load(tags []core.Tag) error {
	if err := l.Object.Load(tags); err != nil {
		return err
	}
	for _, t := range tags {
		v, err := t.Vec3()
		if err != nil {
			continue
		}
		switch t.GroupCode() {
		case 10:
			l.Start = v
		case 11:
			l.End = v
		}
	}
	return nil
}

func (l *Line) BBox() core.BBox {
	var box core.BBox
	box.Extend(l.Start)
	box.Extend(l.End)
	return box
}
