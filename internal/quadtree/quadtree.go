// Package quadtree decomposes a raster image into a tree of rectangular
// regions, recursively subdividing regions whose pixel content is too
// heterogeneous to approximate with a single flat color.
package quadtree

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/ivlev/quadimg/internal/analyzer"
)

const (
	// DefaultMaxDepth caps recursion independent of image content.
	DefaultMaxDepth = 8

	// DefaultDetailThreshold is the detail score below which a region is
	// considered flat enough to stop splitting, on an 8-bit channel scale.
	DefaultDetailThreshold = 13.0
)

// ErrEmptyImage reports a source image with no pixels.
var ErrEmptyImage = errors.New("quadtree: image has zero area")

// Options tunes tree construction. Lower detail thresholds produce finer,
// more accurate but larger trees.
type Options struct {
	MaxDepth        int
	DetailThreshold float64
}

// DefaultOptions returns the recommended construction tuning.
func DefaultOptions() Options {
	return Options{
		MaxDepth:        DefaultMaxDepth,
		DetailThreshold: DefaultDetailThreshold,
	}
}

func (o Options) validate() error {
	if o.MaxDepth < 0 {
		return fmt.Errorf("quadtree: invalid configuration: max depth %d is negative", o.MaxDepth)
	}
	if o.DetailThreshold < 0 {
		return fmt.Errorf("quadtree: invalid configuration: detail threshold %f is negative", o.DetailThreshold)
	}
	return nil
}

// Quadrant is one node of the tree: a rectangular region together with
// the statistics computed over it at construction time. A quadrant owns
// its children outright; it is a leaf exactly when it has none.
type Quadrant struct {
	Rect   image.Rectangle
	Depth  int
	Detail float64
	Color  color.RGBA

	children []*Quadrant
}

func newQuadrant(img image.Image, rect image.Rectangle, depth int) *Quadrant {
	h := analyzer.RegionHistogram(img, rect)
	return &Quadrant{
		Rect:   rect,
		Depth:  depth,
		Detail: h.Detail(),
		Color:  h.AverageColor(),
	}
}

// IsLeaf reports whether the quadrant has no children.
func (q *Quadrant) IsLeaf() bool {
	return len(q.children) == 0
}

// Children returns the quadrant's four children in
// {top-left, top-right, bottom-left, bottom-right} order, or nil for a leaf.
func (q *Quadrant) Children() []*Quadrant {
	return q.children
}

// split partitions the quadrant into four children that tile its
// rectangle exactly. The top/left child takes floor(dimension/2) pixels
// and the bottom/right child the remainder, so odd dimensions lose no
// pixel row or column.
func (q *Quadrant) split(img image.Image) {
	mx := q.Rect.Min.X + q.Rect.Dx()/2
	my := q.Rect.Min.Y + q.Rect.Dy()/2
	d := q.Depth + 1

	q.children = []*Quadrant{
		newQuadrant(img, image.Rect(q.Rect.Min.X, q.Rect.Min.Y, mx, my), d),
		newQuadrant(img, image.Rect(mx, q.Rect.Min.Y, q.Rect.Max.X, my), d),
		newQuadrant(img, image.Rect(q.Rect.Min.X, my, mx, q.Rect.Max.Y), d),
		newQuadrant(img, image.Rect(mx, my, q.Rect.Max.X, q.Rect.Max.Y), d),
	}
}

// QuadTree owns the root quadrant covering the full image. It is built
// once and holds no reference to the source image afterwards.
type QuadTree struct {
	Root *Quadrant

	// MaxDepthReached is the deepest leaf produced during construction,
	// useful for depth-limited partial rendering.
	MaxDepthReached int

	opts Options
}

// Build constructs the full tree over img. Construction is deterministic:
// the same pixels and options always produce the same tree.
func Build(img image.Image, opts Options) (*QuadTree, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, ErrEmptyImage
	}

	t := &QuadTree{opts: opts}
	t.Root = newQuadrant(img, bounds, 0)
	t.build(t.Root, img)
	return t, nil
}

func (t *QuadTree) build(q *Quadrant, img image.Image) {
	// A region narrower or shorter than 2 pixels cannot produce four
	// non-empty children and is forced to leaf regardless of detail.
	if q.Depth >= t.opts.MaxDepth ||
		q.Detail < t.opts.DetailThreshold ||
		q.Rect.Dx() < 2 || q.Rect.Dy() < 2 {
		if q.Depth > t.MaxDepthReached {
			t.MaxDepthReached = q.Depth
		}
		return
	}

	q.split(img)
	for _, child := range q.children {
		t.build(child, img)
	}
}

// NodeCount returns the total number of quadrants in the tree.
func (t *QuadTree) NodeCount() int {
	return count(t.Root, func(*Quadrant) bool { return true })
}

// LeafCount returns the number of leaves in the tree.
func (t *QuadTree) LeafCount() int {
	return count(t.Root, (*Quadrant).IsLeaf)
}

func count(q *Quadrant, pred func(*Quadrant) bool) int {
	n := 0
	if pred(q) {
		n = 1
	}
	for _, child := range q.children {
		n += count(child, pred)
	}
	return n
}
