package itinerary

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dukaforge/waypoints/pkg/types"
)

// Processor turns raw reservation lines into the ordered trip list for a
// home location. It is the glue between an input source and the parser and
// linker; it holds no state beyond the home code.
type Processor struct {
	Home string
}

// Process scans r line by line, parses every record line, and links the
// resulting segments into trips. Blank lines and lines without the record
// marker are skipped before the parser sees them. Processing is fail-fast:
// the first parse or link error aborts the whole input and no partial trip
// list is returned.
func (p Processor) Process(r io.Reader) ([]types.Trip, error) {
	segments, err := ReadSegments(r)
	if err != nil {
		return nil, err
	}
	return Group(segments, p.Home)
}

// ReadSegments scans r and parses every record line into a segment,
// preserving input order. Lines that are blank or lack the record marker
// are not segment records and are ignored.
func ReadSegments(r io.Reader) ([]types.Segment, error) {
	scanner := bufio.NewScanner(r)
	var segments []types.Segment
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || !strings.HasPrefix(text, RecordMarker) {
			continue
		}
		seg, err := ParseSegment(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		segments = append(segments, seg)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return segments, nil
}
