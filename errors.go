package fontatlas

import (
	"errors"
	"strconv"
)

// Sentinel errors for the fontatlas package.
var (
	// ErrNoEntries is returned when Generate is called with nothing
	// to do.
	ErrNoEntries = errors.New("fontatlas: no font entries")
)

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "fontatlas: invalid config." + e.Field + ": " + e.Reason
}

// EntryError reports an invalid Entry, identified by its index in the
// slice passed to Generate.
type EntryError struct {
	Index  int
	Reason string
}

func (e *EntryError) Error() string {
	return "fontatlas: entry " + strconv.Itoa(e.Index) + ": " + e.Reason
}

// OrderingError reports that a character needed the shared
// missing-glyph rectangle before any missing glyph had been
// rasterized. It signals an internal contract violation between the
// packing and rendering passes, not a malformed font.
type OrderingError struct {
	Char rune
}

func (e *OrderingError) Error() string {
	return "fontatlas: missing glyph for " + strconv.QuoteRune(e.Char) + " requested before one was rendered"
}
