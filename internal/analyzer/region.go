package analyzer

import (
	"image"
	"image/color"

	"gonum.org/v1/gonum/stat"
)

// Levels is the number of intensity levels per 8-bit channel.
const Levels = 256

// Luma weights used to collapse per-channel dispersion into one score
// (ITU-R BT.601 grayscale coefficients).
const (
	lumaRed   = 0.2989
	lumaGreen = 0.5870
	lumaBlue  = 0.1140
)

// levels holds the bin indices 0..255 as float64, shared by all
// weighted-moment computations.
var levels [Levels]float64

func init() {
	for i := range levels {
		levels[i] = float64(i)
	}
}

// Histogram holds per-channel intensity histograms over a pixel region.
// Bin counts are stored as float64 so they can feed gonum's weighted
// statistics directly.
type Histogram struct {
	bins  [3][Levels]float64 // R, G, B
	count int
}

// RegionHistogram scans the given rectangle of img and accumulates one
// 256-bin histogram per color channel.
func RegionHistogram(img image.Image, rect image.Rectangle) *Histogram {
	h := &Histogram{}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			h.bins[0][r>>8]++
			h.bins[1][g>>8]++
			h.bins[2][b>>8]++
			h.count++
		}
	}
	return h
}

// Count returns the number of pixels accumulated into the histogram.
func (h *Histogram) Count() int {
	return h.count
}

// AverageColor returns the per-channel mean of the region, truncated to
// the 8-bit channel range. An empty region yields opaque black.
func (h *Histogram) AverageColor() color.RGBA {
	if h.count == 0 {
		return color.RGBA{A: 255}
	}
	return color.RGBA{
		R: uint8(stat.Mean(levels[:], h.bins[0][:])),
		G: uint8(stat.Mean(levels[:], h.bins[1][:])),
		B: uint8(stat.Mean(levels[:], h.bins[2][:])),
		A: 255,
	}
}

// Detail returns the heterogeneity score of the region: the population
// standard deviation of each channel's intensity distribution, combined
// with luma weights. A visually flat region scores near zero; an empty
// region scores exactly zero.
func (h *Histogram) Detail() float64 {
	if h.count == 0 {
		return 0
	}
	r := stat.PopStdDev(levels[:], h.bins[0][:])
	g := stat.PopStdDev(levels[:], h.bins[1][:])
	b := stat.PopStdDev(levels[:], h.bins[2][:])
	return lumaRed*r + lumaGreen*g + lumaBlue*b
}
