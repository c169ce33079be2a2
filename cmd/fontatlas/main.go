// Command fontatlas builds a glyph atlas from TrueType font files and
// writes it out as a PNG, optionally with a JSON metrics dump.
//
// Usage:
//
//	fontatlas -size 24 -o atlas.png -metrics metrics.json font.ttf [font2.ttf ...]
package main

import (
	"encoding/json"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/fontatlas"
)

func main() {
	var (
		size    = flag.Float64("size", 24, "pixel size (total line height)")
		output  = flag.String("o", "atlas.png", "output PNG file")
		metrics = flag.String("metrics", "", "optional JSON metrics output file")
		verbose = flag.Bool("v", false, "log generation details to stderr")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		log.Fatal("no font files given")
	}
	if *verbose {
		fontatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	entries := make([]fontatlas.Entry, flag.NArg())
	for i, path := range flag.Args() {
		entries[i] = fontatlas.Entry{
			Metrics:  make([]fontatlas.CharPosition, fontatlas.CharCount),
			FontPath: path,
			Size:     *size,
		}
	}

	atlas, err := fontatlas.GenerateFile(entries)
	if err != nil {
		log.Fatalf("Failed to generate atlas: %v", err)
	}

	if err := atlas.SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Atlas saved to %s (%dx%d, %d fonts)", *output, atlas.Width, atlas.Height, len(entries))

	if *metrics != "" {
		if err := writeMetrics(*metrics, entries); err != nil {
			log.Fatalf("Failed to write metrics: %v", err)
		}
		log.Printf("Metrics saved to %s", *metrics)
	}
}

// metricsFile is the JSON layout of the -metrics dump.
type metricsFile struct {
	Font    string                   `json:"font"`
	Size    float64                  `json:"size"`
	Ascent  float32                  `json:"ascent"`
	Descent float32                  `json:"descent"`
	Chars   []fontatlas.CharPosition `json:"chars"`
}

func writeMetrics(path string, entries []fontatlas.Entry) error {
	out := make([]metricsFile, len(entries))
	for i, e := range entries {
		out[i] = metricsFile{
			Font:    e.FontPath,
			Size:    e.Size,
			Ascent:  e.Ascent,
			Descent: e.Descent,
			Chars:   e.Metrics,
		}
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
