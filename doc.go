// Package fontatlas generates greyscale glyph atlases from TrueType
// fonts.
//
// # Overview
//
// Given one or more font files and target pixel sizes, Generate
// produces a single packed bitmap containing anti-aliased renderings
// of the printable ASCII range [32, 127), plus one metrics table per
// font with each character's atlas rectangle, advance and origin
// offset. The bitmap is suitable for upload as a single-channel
// texture; this package stops at bytes and metrics and has no
// presentation layer of its own.
//
// # Quick Start
//
//	metrics := make([]fontatlas.CharPosition, fontatlas.CharCount)
//	atlas, err := fontatlas.GenerateFile([]fontatlas.Entry{{
//	    Metrics:  metrics,
//	    FontPath: "DejaVuSans.ttf",
//	    Size:     24,
//	}})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// atlas.Pix is atlas.Width x atlas.Height bytes of coverage;
//	// metrics[c-32] locates character c inside it.
//
// # Architecture
//
// The pipeline runs strictly downward in a single pass:
//   - truetype: SFNT table location, cmap lookup, outline decoding
//   - raster: quadratic flattening and analytic scanline coverage
//   - fontatlas: per-character boxes, shelf packing, orchestration
//
// Rendering is single-threaded and deterministic: the same fonts and
// sizes always produce the same bytes.
//
// # Coordinate System
//
// Atlas and metrics coordinates are y-down with the origin at the
// top-left. A character's origin offset (XOff, YOff) positions its
// rectangle relative to the text pen, with YOff negative for glyphs
// extending above the baseline.
package fontatlas
