package entities

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidHandle   = errors.New("dxf: invalid handle 0")
	ErrDuplicateHandle = errors.New("dxf: handle already exist")
)

const (
	DefaultBucketExponent = 12 // 2^12 = 4096 个桶
	MaxBucketExponent     = 24
)

// HandleTable 按句柄查找实体。
//
// 句柄和实体的关系在文档的生命周期内不会改变，实体也不会被销毁，
// 所以不需要删除单个条目。桶的数量固定，不会扩容。
type HandleTable struct {
	buckets [][]Entity
	mask    uint64
	size    int
}

// NewHandleTable 创建 2^n 个桶的句柄表，n 必须在 [1, 24] 内
func NewHandleTable(n int) *HandleTable {
	if n < 1 || n > MaxBucketExponent {
		panic(fmt.Sprintf("dxf: invalid bucket exponent %d", n))
	}
	count := 1 << n
	return &HandleTable{
		buckets: make([][]Entity, count),
		mask:    uint64(count - 1),
	}
}

func (t *HandleTable) bucket(h Handle) int {
	return int(uint64(h) & t.mask)
}

// Get 找不到时返回 def
func (t *HandleTable) Get(h Handle, def Entity) Entity {
	// 桶很小，线性查找足够快
	for _, e := range t.buckets[t.bucket(h)] {
		if e.Handle() == h {
			return e
		}
	}
	return def
}

// Has 句柄 0 永远不存在
func (t *HandleTable) Has(h Handle) bool {
	if h == 0 {
		return false
	}
	return t.Get(h, nil) != nil
}

// Store 句柄为 0 或已存在时 panic，这属于调用方的编程错误
func (t *HandleTable) Store(e Entity) {
	h := e.Handle()
	if h == 0 {
		panic(ErrInvalidHandle)
	}
	if t.Has(h) {
		panic(fmt.Errorf("%w: %s", ErrDuplicateHandle, h))
	}
	i := t.bucket(h)
	t.buckets[i] = append(t.buckets[i], e)
	t.size++
}

func (t *HandleTable) Len() int { return t.size }

func (t *HandleTable) BucketCount() int { return len(t.buckets) }

// Each 按桶的顺序遍历，fn 返回 false 时停止
func (t *HandleTable) Each(fn func(Entity) bool) {
	for _, b := range t.buckets {
		for _, e := range b {
			if !fn(e) {
				return
			}
		}
	}
}

// Clear 释放所有实体，桶的数量不变
func (t *HandleTable) Clear() {
	for i := range t.buckets {
		clear(t.buckets[i])
		t.buckets[i] = nil
	}
	t.size = 0
}
