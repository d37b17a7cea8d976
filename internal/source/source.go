// Package source decodes the input image the compressor works on.
// A Source hides whether pixels come from a plain raster file or from a
// rendered PDF page.
package source

import (
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

type Source interface {
	PageCount() int
	RenderPage(index int, dpi int) (image.Image, error)
	Close() error
}

// Open picks a source implementation by file extension.
func Open(path string) (Source, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return NewFitzPDFSource(path)
	}
	return NewImageSource(path)
}

// FitzPDFSource renders PDF pages through MuPDF.
type FitzPDFSource struct {
	doc *fitz.Document
}

func NewFitzPDFSource(path string) (*FitzPDFSource, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	return &FitzPDFSource{doc: doc}, nil
}

func (s *FitzPDFSource) PageCount() int {
	return s.doc.NumPage()
}

func (s *FitzPDFSource) RenderPage(index int, dpi int) (image.Image, error) {
	if index < 0 || index >= s.doc.NumPage() {
		return nil, fmt.Errorf("page %d out of range (document has %d)", index, s.doc.NumPage())
	}
	return s.doc.ImageDPI(index, float64(dpi))
}

func (s *FitzPDFSource) Close() error {
	return s.doc.Close()
}
