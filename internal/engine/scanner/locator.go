package scanner

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// DefaultSuffixWidth is the width of the "_<n>" lane index suffix in
// SUMO-style lane ids.
const DefaultSuffixWidth = 2

// Locator maps a lane id taken from the log to the location events are
// grouped under.
type Locator func(lane string) string

// LaneLocator groups events per lane. Canonically equivalent ids are merged
// by NFC normalization; ids that are not valid UTF-8 are kept byte for byte.
func LaneLocator() Locator {
	return canonical
}

// SegmentLocator groups events per road segment by dropping the trailing
// width characters of the lane id. Ids no longer than width map to "".
// An invalid UTF-8 byte counts as one character and is never rewritten.
func SegmentLocator(width int) Locator {
	if width < 0 {
		width = 0
	}
	return func(lane string) string {
		s := canonical(lane)
		for range width {
			if s == "" {
				break
			}
			_, size := utf8.DecodeLastRuneInString(s)
			s = s[:len(s)-size]
		}
		return s
	}
}

func canonical(lane string) string {
	if !utf8.ValidString(lane) {
		return lane
	}
	return norm.NFC.String(lane)
}
