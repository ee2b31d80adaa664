package core

import (
	"fmt"
	"math"

	"github.com/zooyer/golib/xmath"
)

const (
	AbsTol = 1e-12
	RelTol = 1e-9
)

// IsClose 与 Python math.isclose 的判断方式一致
func IsClose(a, b, absTol float64) bool {
	diff := math.Abs(b - a)
	return diff <= math.Abs(RelTol*b) ||
		diff <= math.Abs(RelTol*a) ||
		xmath.Equal(a, b, absTol)
}

// Vec3 不可变的三维向量或点
type Vec3 struct {
	X, Y, Z float64
}

var (
	XAxis = Vec3{X: 1}
	YAxis = Vec3{Y: 1}
	ZAxis = Vec3{Z: 1}
)

// Vec3FromRadians 返回 xy 平面上指定角度和长度的向量
func Vec3FromRadians(rad, length float64) Vec3 {
	return Vec3{X: math.Cos(rad) * length, Y: math.Sin(rad) * length}
}

func (v Vec3) IsClose(other Vec3, absTol float64) bool {
	return IsClose(v.X, other.X, absTol) &&
		IsClose(v.Y, other.Y, absTol) &&
		IsClose(v.Z, other.Z, absTol)
}

// IsCloseZero 比 IsClose(Vec3{}) 更快的零向量判断
func (v Vec3) IsCloseZero(absTol float64) bool {
	return math.Abs(v.X) <= absTol && math.Abs(v.Y) <= absTol && math.Abs(v.Z) <= absTol
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Magnitude2() float64 {
	return v.Dot(v)
}

func (v Vec3) Magnitude() float64 {
	return math.Sqrt(v.Magnitude2())
}

// Normalize 零向量原样返回
func (v Vec3) Normalize(length float64) Vec3 {
	mag := v.Magnitude()
	if math.Abs(mag) < AbsTol {
		return v
	}
	return v.Scale(length / mag)
}

func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Magnitude()
}

// Lerp 线性插值，factor=0.5 为中点
func (v Vec3) Lerp(o Vec3, factor float64) Vec3 {
	return v.Add(o.Sub(v).Scale(factor))
}

func (v Vec3) String() string {
	return fmt.Sprintf("Vec3{%g, %g, %g}", v.X, v.Y, v.Z)
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Vec3
	valid    bool
}

// Extend 把点加入包围盒
func (b *BBox) Extend(p Vec3) {
	if !b.valid {
		b.Min, b.Max, b.valid = p, p, true
		return
	}
	b.Min = Vec3{X: math.Min(b.Min.X, p.X), Y: math.Min(b.Min.Y, p.Y), Z: math.Min(b.Min.Z, p.Z)}
	b.Max = Vec3{X: math.Max(b.Max.X, p.X), Y: math.Max(b.Max.Y, p.Y), Z: math.Max(b.Max.Z, p.Z)}
}

// HasData 是否至少包含一个点
func (b BBox) HasData() bool {
	return b.valid
}

func (b BBox) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b BBox) Center() Vec3 {
	return b.Min.Lerp(b.Max, 0.5)
}
