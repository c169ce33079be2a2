package truetype

import "strconv"

// FormatError is returned when the font file is structurally invalid:
// a bad SFNT tag, a missing required table, or a read that would fall
// outside the file.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return "truetype: invalid font: " + e.Reason
}

// UnsupportedEncodingError is returned when the cmap table contains no
// Unicode-capable subtable.
type UnsupportedEncodingError struct{}

func (e *UnsupportedEncodingError) Error() string {
	return "truetype: no unicode cmap subtable found"
}

// UnsupportedFormatError is returned when the selected cmap subtable
// uses a format other than 0, 4 or 12.
type UnsupportedFormatError struct {
	Format uint16
}

func (e *UnsupportedFormatError) Error() string {
	return "truetype: cmap format " + strconv.Itoa(int(e.Format)) + " is not supported"
}

// UnsupportedFeatureError is returned when a glyph uses a TrueType
// feature this package does not implement, such as point-matching
// composite placement.
type UnsupportedFeatureError struct {
	Feature string
}

func (e *UnsupportedFeatureError) Error() string {
	return "truetype: unsupported feature: " + e.Feature
}
