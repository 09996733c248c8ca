// Package chunk splits over-budget transcripts into ordered, bounded pieces.
package chunk

import "unicode/utf8"

// DefaultLimit is the default chunk size in characters. It approximates a
// model input budget; no tokenization is done.
const DefaultLimit = 15000

// Chunk is one contiguous slice of a transcript.
type Chunk struct {
	Index int
	Text  string
}

// Len returns the chunk length in characters.
func (c Chunk) Len() int {
	return utf8.RuneCountInString(c.Text)
}

// Len returns the length of s in characters, the unit every limit is
// expressed in.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// Plan cuts transcript into consecutive chunks of exactly limit characters,
// the last one holding the remainder. A transcript that fits returns a single
// chunk. Cuts ignore word and sentence boundaries, so a word may be split
// across two chunks. A non-positive limit means DefaultLimit.
func Plan(transcript string, limit int) []Chunk {
	if transcript == "" {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	total := Len(transcript)
	if total <= limit {
		return []Chunk{{Index: 0, Text: transcript}}
	}

	chunks := make([]Chunk, 0, (total+limit-1)/limit)
	start, count := 0, 0
	for i := range transcript {
		if count == limit {
			chunks = append(chunks, Chunk{Index: len(chunks), Text: transcript[start:i]})
			start, count = i, 0
		}
		count++
	}
	chunks = append(chunks, Chunk{Index: len(chunks), Text: transcript[start:]})

	return chunks
}
