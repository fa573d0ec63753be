// Package constants holds the compile-time values shared across the
// solver core and its transport/CLI layers.
package constants

// MaxColors is the width of a color set in bits; also the largest
// supported grid size.
const MaxColors = 64

// EmptyCell is the sentinel character printed for a fully-open cell
// (every color still a candidate) when the grid size is greater than 1.
const EmptyCell = '_'

// Alphabet maps a color index (0-based) to its display character.
// Index i maps to the i-th character below.
const Alphabet = "123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ@abcdefghijklmnopqrstuvwxyz&*"

// AllowedSizes are the only grid sizes the core supports: N with an
// integer block size sqrt(N).
var AllowedSizes = [8]int{1, 4, 9, 16, 25, 36, 49, 64}

// DefaultSize is used when a caller does not specify a grid size.
const DefaultSize = 9

// EmptyRate is the fraction of cells the generator blanks out, in (0,1).
// pkg/config reads and validates SUDOKU_EMPTY_RATE into Config.EmptyRate,
// but the CLI default and the HTTP fallback use this constant, not that
// field.
const EmptyRate = 0.55

// DefaultPort is the HTTP transport's fallback listen port.
const DefaultPort = "8080"

// APIVersion is reported by the health endpoint.
const APIVersion = "0.1.0"
