package corpus

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed sim.log
var corpusLog string

//go:embed expected.json
var expectedJSON []byte

// Expected holds the segment-granularity results for the corpus log.
type Expected struct {
	BucketWidth int64          `json:"bucket_width"`
	Waiting     map[string]int `json:"waiting"`
	Collision   map[string]int `json:"collision"`
	Rows        []ExpectedRow  `json:"rows"`
}

// ExpectedRow is one row of the expected gap-filled series.
type ExpectedRow struct {
	Bucket    int64 `json:"bucket"`
	Waiting   int   `json:"waiting"`
	Collision int   `json:"collision"`
}

// Log returns a simulation log mixing teleport warnings with the other
// lines a simulator prints.
func Log() string {
	return corpusLog
}

// LoadExpected parses the embedded expected.json.
func LoadExpected() (Expected, error) {
	var e Expected
	if err := json.Unmarshal(expectedJSON, &e); err != nil {
		return Expected{}, fmt.Errorf("parse expected.json: %w", err)
	}
	return e, nil
}
