package connector

import (
	"fmt"
	"slices"
	"strings"
)

var registry = map[string]Decoder{}

// Register adds a decoder for log files with the given extension
// (including the dot, e.g. ".gz").
func Register(ext string, dec Decoder) {
	registry[strings.ToLower(ext)] = dec
}

// Get returns the decoder registered for the given extension.
func Get(ext string) (Decoder, error) {
	dec, ok := registry[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("no decoder for extension: %s", ext)
	}
	return dec, nil
}

// Extensions returns the registered extensions, sorted.
func Extensions() []string {
	exts := make([]string, 0, len(registry))
	for ext := range registry {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}
