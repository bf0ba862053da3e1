package ciagent

import (
	"strings"
	"unicode/utf8"
)

// Default chunking parameters, measured in characters.
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 50
)

// textSeparators are tried in order, from the most to the least natural
// break. The empty separator splits into single characters.
var textSeparators = []string{"\n\n", "\n", ". ", " ", ""}

// SplitText splits text into overlapping chunks of at most size characters.
// It prefers to break on paragraph boundaries, then lines, then sentences,
// then words, falling back to single characters only when nothing else
// fits. Consecutive chunks share up to overlap characters of context.
// Whitespace-only input yields no chunks.
func SplitText(text string, size, overlap int) ([]string, error) {
	if size <= 0 {
		return nil, Errorf(EINVALID, "chunk size must be positive")
	}
	if overlap < 0 || overlap >= size {
		return nil, Errorf(EINVALID, "chunk overlap must be between 0 and %d", size-1)
	}
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	s := splitter{size: size, overlap: overlap}
	return s.split(text, textSeparators), nil
}

type splitter struct {
	size    int
	overlap int
}

func (s splitter) split(text string, separators []string) []string {
	sep := separators[len(separators)-1]
	var rest []string
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}

	var chunks, pending []string
	for _, piece := range strings.Split(text, sep) {
		if piece == "" {
			continue
		}
		if runeLen(piece) < s.size {
			pending = append(pending, piece)
			continue
		}
		if len(pending) > 0 {
			chunks = append(chunks, s.merge(pending, sep)...)
			pending = nil
		}
		if len(rest) == 0 {
			chunks = append(chunks, piece)
			continue
		}
		chunks = append(chunks, s.split(piece, rest)...)
	}
	if len(pending) > 0 {
		chunks = append(chunks, s.merge(pending, sep)...)
	}
	return chunks
}

// merge joins small pieces into chunks no longer than size, carrying the
// trailing pieces of each chunk (up to overlap characters) into the next.
func (s splitter) merge(pieces []string, sep string) []string {
	sepLen := runeLen(sep)
	var chunks, window []string
	total := 0

	joinLen := func() int {
		if len(window) > 0 {
			return sepLen
		}
		return 0
	}

	for _, p := range pieces {
		n := runeLen(p)
		if total+n+joinLen() > s.size && len(window) > 0 {
			if chunk := strings.TrimSpace(strings.Join(window, sep)); chunk != "" {
				chunks = append(chunks, chunk)
			}
			for total > s.overlap || (total > 0 && total+n+joinLen() > s.size) {
				total -= runeLen(window[0])
				if len(window) > 1 {
					total -= sepLen
				}
				window = window[1:]
			}
		}
		total += n + joinLen()
		window = append(window, p)
	}
	if chunk := strings.TrimSpace(strings.Join(window, sep)); chunk != "" {
		chunks = append(chunks, chunk)
	}
	return chunks
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
