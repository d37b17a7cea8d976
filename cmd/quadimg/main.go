package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/ivlev/quadimg/internal/config"
	"github.com/ivlev/quadimg/internal/export"
	"github.com/ivlev/quadimg/internal/quadtree"
	"github.com/ivlev/quadimg/internal/source"
	"github.com/ivlev/quadimg/internal/system"
)

func main() {
	configPtr := flag.String("config", "", "Path to YAML config file (flags override its values)")
	inputPtr := flag.String("input", "", "Path to input image (PNG/JPEG) or PDF")
	outputPtr := flag.String("output", "", "Path to output PNG (default: output/<name>_quad_<timestamp>.png)")
	maxDepthPtr := flag.Int("max-depth", quadtree.DefaultMaxDepth, "Maximum subdivision depth")
	thresholdPtr := flag.Float64("threshold", quadtree.DefaultDetailThreshold, "Detail threshold; lower values split more aggressively")
	depthLimitPtr := flag.Int("depth-limit", quadtree.NoDepthLimit, "Render only down to this depth (-1 = no limit)")
	linesPtr := flag.Bool("lines", false, "Draw quadrant boundaries")
	scalePtr := flag.Float64("scale", 1.0, "Pre-scale factor applied to the input before building")
	pagePtr := flag.Int("page", 0, "PDF page index")
	dpiPtr := flag.Int("dpi", 150, "PDF render DPI")
	framesDirPtr := flag.String("frames-dir", "", "If set, also export one frame per refinement depth into this directory")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Frame export workers")
	statsPtr := flag.Bool("stats", false, "Print process stats after the run")

	flag.Parse()

	cfg, err := config.Load(*configPtr)
	if err != nil {
		log.Fatalf("[-] Config error: %v", err)
	}

	// Explicit flags win over config file values.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputPath = *inputPtr
		case "output":
			cfg.OutputPath = *outputPtr
		case "max-depth":
			cfg.MaxDepth = *maxDepthPtr
		case "threshold":
			cfg.DetailThreshold = *thresholdPtr
		case "depth-limit":
			cfg.DepthLimit = *depthLimitPtr
		case "lines":
			cfg.DrawLines = *linesPtr
		case "scale":
			cfg.Scale = *scalePtr
		case "page":
			cfg.Page = *pagePtr
		case "dpi":
			cfg.DPI = *dpiPtr
		case "frames-dir":
			cfg.FramesDir = *framesDirPtr
		case "workers":
			cfg.Workers = *workersPtr
		case "stats":
			cfg.ShowStats = *statsPtr
		}
	})

	if cfg.InputPath == "" {
		flag.Usage()
		log.Fatalf("[-] No input given")
	}

	src, err := source.Open(cfg.InputPath)
	if err != nil {
		log.Fatalf("[-] Source error: %v", err)
	}
	defer src.Close()

	img, err := src.RenderPage(cfg.Page, cfg.DPI)
	if err != nil {
		log.Fatalf("[-] Decode error: %v", err)
	}

	if cfg.Scale != 1.0 {
		img = source.Scale(img, cfg.Scale)
		fmt.Printf("[*] Input scaled by %.2f to %dx%d\n", cfg.Scale, img.Bounds().Dx(), img.Bounds().Dy())
	}

	buildStart := time.Now()
	tree, err := quadtree.Build(img, cfg.Options())
	if err != nil {
		log.Fatalf("[-] Build error: %v", err)
	}
	fmt.Printf("[*] Built %d quadrants (%d leaves, depth %d) in %.2fs\n",
		tree.NodeCount(), tree.LeafCount(), tree.MaxDepthReached, time.Since(buildStart).Seconds())

	outputPath := cfg.OutputPath
	if outputPath == "" {
		base := filepath.Base(cfg.InputPath)
		name := strings.TrimSuffix(base, filepath.Ext(base))
		timestamp := time.Now().Format("2006-01-02_15-04-05")
		outputPath = filepath.Join("output", fmt.Sprintf("%s_quad_%s.png", name, timestamp))
	}

	rendered := tree.Render(cfg.DepthLimit, cfg.DrawLines)
	if err := export.WritePNG(rendered, outputPath); err != nil {
		log.Fatalf("[-] Write error: %v", err)
	}

	if cfg.FramesDir != "" {
		fmt.Printf("[*] Exporting %d refinement frames to %s\n", tree.MaxDepthReached+1, cfg.FramesDir)
		if err := export.FrameSequence(tree, cfg.FramesDir, cfg.DrawLines, cfg.Workers); err != nil {
			log.Fatalf("[-] Frame export error: %v", err)
		}
	}

	if cfg.ShowStats {
		system.PrintProcessStats()
	}

	fmt.Printf("[+] Done: %s\n", outputPath)
}
