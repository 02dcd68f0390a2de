// Package pgn provides record segmentation and tag extraction for
// concatenated PGN text.
package pgn

import "strings"

// RecordMarker is the line prefix that starts a new game record.
const RecordMarker = `[Event `

// Split segments concatenated PGN text into individual game records. A record
// runs from a line beginning with RecordMarker up to (not including) the next
// such line. Text before the first marker is discarded. Records keep their
// original bytes and order.
func Split(text string) []string {
	starts := markerOffsets(text)
	if len(starts) == 0 {
		return nil
	}
	records := make([]string, 0, len(starts))
	for i, off := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		records = append(records, text[off:end])
	}
	return records
}

// markerOffsets returns the byte offset of every line that begins a record.
func markerOffsets(text string) []int {
	var offs []int
	lineStart := 0
	for lineStart < len(text) {
		if strings.HasPrefix(text[lineStart:], RecordMarker) {
			offs = append(offs, lineStart)
		}
		next := strings.IndexByte(text[lineStart:], '\n')
		if next < 0 {
			break
		}
		lineStart += next + 1
	}
	return offs
}
