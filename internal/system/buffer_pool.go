package system

import (
	"image"
	"sync"
)

// FramePool recycles equally-sized *image.RGBA frame buffers to keep the
// progressive-export path from allocating one full image per frame.
type FramePool struct {
	rect image.Rectangle
	pool sync.Pool
}

func NewFramePool(rect image.Rectangle) *FramePool {
	return &FramePool{
		rect: rect,
		pool: sync.Pool{
			New: func() interface{} {
				return image.NewRGBA(rect)
			},
		},
	}
}

func (p *FramePool) Get() *image.RGBA {
	return p.pool.Get().(*image.RGBA)
}

// Put returns a frame for reuse. Frames of the wrong size are dropped.
func (p *FramePool) Put(img *image.RGBA) {
	if img == nil || img.Rect != p.rect {
		return
	}
	p.pool.Put(img)
}
