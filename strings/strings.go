// Package strings provides the offset and width types used by the editor,
// together with grapheme and display width helpers.
package strings

import (
	"slices"
	"unicode/utf8"

	runewidth "github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ByteNumber is an offset or length expressed in bytes of UTF-8 text.
type ByteNumber int

// RuneNumber is an offset or length expressed in Unicode scalar values.
type RuneNumber int

// GraphemeNumber is an offset or length expressed in grapheme clusters
// (user-perceived characters).
type GraphemeNumber int

// Width is a number of terminal columns.
type Width int

// GetWidth returns the number of columns text occupies on a terminal.
func GetWidth(text string) Width {
	return Width(runewidth.StringWidth(text))
}

// RuneCountInString returns the number of runes in s.
func RuneCountInString(s string) RuneNumber {
	return RuneNumber(utf8.RuneCountInString(s))
}

// GraphemeCountInString returns the number of grapheme clusters in s.
func GraphemeCountInString(s string) GraphemeNumber {
	return GraphemeNumber(uniseg.GraphemeClusterCount(s))
}

// GraphemeBoundaries returns the byte offsets at which each grapheme cluster
// of s starts, in ascending order. The end of the text is not included, and
// an empty string has no boundaries.
func GraphemeBoundaries(s string) []ByteNumber {
	if s == "" {
		return nil
	}
	boundaries := make([]ByteNumber, 0, len(s))
	var offset ByteNumber
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		boundaries = append(boundaries, offset)
		offset += ByteNumber(len(cluster))
	}
	return boundaries
}

// IsGraphemeBoundary reports whether offset is the start of a grapheme
// cluster in s, or the end of s.
func IsGraphemeBoundary(s string, offset ByteNumber) bool {
	if offset == ByteNumber(len(s)) {
		return true
	}
	if offset < 0 || offset > ByteNumber(len(s)) {
		return false
	}
	_, found := slices.BinarySearch(GraphemeBoundaries(s), offset)
	return found
}

// ContainingBoundary returns the largest boundary in boundaries that is not
// greater than offset, or 0 when there is none. The boundaries must be sorted
// ascending, as returned by GraphemeBoundaries.
func ContainingBoundary(boundaries []ByteNumber, offset ByteNumber) ByteNumber {
	i, found := slices.BinarySearch(boundaries, offset)
	if found {
		return boundaries[i]
	}
	if i == 0 {
		return 0
	}
	return boundaries[i-1]
}
