package scanner

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"regexp"
	"strconv"
	"strings"

	"github.com/crimson-sun/teleports/internal/model"
)

const (
	// Marker identifies teleport warnings. Other lines are skipped.
	Marker = "Warning: Teleporting vehicle"

	collisionMarker = "collision"
	readBufSize     = 64 * 1024
)

var (
	reLane = regexp.MustCompile(`lane='([^']*)'`)
	reTime = regexp.MustCompile(`time=(\d+)\.`)
)

// MalformedLineError reports a teleport warning that lacks the lane or the
// time fragment. It means the log format changed and the scan must stop.
type MalformedLineError struct {
	Line    int
	Text    string
	Missing string // "lane" or "time"
	// Unterminated reports that the line was the last one of the input and
	// had no trailing newline, so it may still be growing.
	Unterminated bool
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed teleport warning at line %d (no %s): %s", e.Line, e.Missing, e.Text)
}

// Scanner extracts LogEvents from simulation log lines.
type Scanner struct {
	locate Locator
}

// New creates a Scanner. A nil Locator keeps lane granularity.
func New(loc Locator) *Scanner {
	if loc == nil {
		loc = LaneLocator()
	}
	return &Scanner{locate: loc}
}

// Parse inspects a single line. ok is false for lines that are not
// teleport warnings.
func (s *Scanner) Parse(line model.RawLine) (ev model.LogEvent, ok bool, err error) {
	if !strings.Contains(line.Text, Marker) {
		return model.LogEvent{}, false, nil
	}

	malformed := func(missing string) error {
		return &MalformedLineError{Line: line.Number, Text: line.Text, Missing: missing, Unterminated: line.Unterminated}
	}
	lane := reLane.FindStringSubmatch(line.Text)
	if lane == nil {
		return model.LogEvent{}, false, malformed("lane")
	}
	tm := reTime.FindStringSubmatch(line.Text)
	if tm == nil {
		return model.LogEvent{}, false, malformed("time")
	}
	t, err := strconv.ParseInt(tm[1], 10, 64)
	if err != nil {
		return model.LogEvent{}, false, malformed("time")
	}

	kind := model.Waiting
	if strings.Contains(line.Text, collisionMarker) {
		kind = model.Collision
	}
	return model.LogEvent{
		Location: s.locate(lane[1]),
		Time:     t,
		Kind:     kind,
	}, true, nil
}

// Lines yields the lines of r in order. Line length is not bounded. A read
// error is yielded once as the last element.
func Lines(r io.Reader) iter.Seq2[model.RawLine, error] {
	return func(yield func(model.RawLine, error) bool) {
		br := bufio.NewReaderSize(r, readBufSize)
		n := 0
		for {
			text, err := br.ReadString('\n')
			if err != nil && err != io.EOF {
				yield(model.RawLine{Number: n + 1}, fmt.Errorf("read line %d: %w", n+1, err))
				return
			}
			if text == "" {
				return
			}
			n++
			line := model.RawLine{Number: n, Unterminated: err == io.EOF}
			text = strings.TrimSuffix(text, "\n")
			line.Text = strings.TrimSuffix(text, "\r")
			if !yield(line, nil) || err == io.EOF {
				return
			}
		}
	}
}

// Events lazily scans r and yields one LogEvent per teleport warning.
// The sequence is forward-only. It stops after the first error.
func (s *Scanner) Events(r io.Reader) iter.Seq2[model.LogEvent, error] {
	return func(yield func(model.LogEvent, error) bool) {
		for line, err := range Lines(r) {
			if err != nil {
				yield(model.LogEvent{}, err)
				return
			}
			ev, ok, err := s.Parse(line)
			if err != nil {
				yield(model.LogEvent{}, err)
				return
			}
			if !ok {
				continue
			}
			if !yield(ev, nil) {
				return
			}
		}
	}
}
