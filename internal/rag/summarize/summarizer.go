package summarize

import (
	"context"
	"strings"

	"github.com/akolanti/LinkAPI/internal/domain/linkModel"
)

// Processor turns fetched content into a title, a summary and an ordered list of
// text chunks. Chunk order encodes position in the document - the caller assigns
// chunk ids straight from the slice index.
type Processor interface {
	Process(ctx context.Context, content []byte, contentType string) (linkModel.ProcessedContent, error)
}

// SplitText cuts text into chunks of at most limit characters, breaking on the
// most semantic separator available and overlapping the tail of each chunk into
// the next one.
func SplitText(text string, limit int, overlap int) []string {
	var chunks []string

	if len(text) <= limit {
		return []string{text}
	}

	// Separators ordered from "best" to "worst" for semantic meaning
	separators := []string{"\n\n", "\n", ". ", " "}

	var splitChar string
	found := false
	for _, s := range separators {
		if strings.Contains(text, s) {
			splitChar = s
			found = true
			break
		}
	}

	if !found {
		// Hard cut if no separator found (rare)
		return hardCut(text, limit)
	}

	parts := strings.Split(text, splitChar)
	var currentChunk strings.Builder

	for _, part := range parts {
		if len(part) > limit {
			// a single separator-free run longer than the limit gets hard cut
			if currentChunk.Len() > 0 {
				chunks = append(chunks, currentChunk.String())
				currentChunk.Reset()
			}
			chunks = append(chunks, hardCut(part, limit)...)
			continue
		}

		if currentChunk.Len()+len(part)+len(splitChar) > limit {
			if currentChunk.Len() > 0 {
				chunks = append(chunks, currentChunk.String())
			}

			// start the next chunk with the end of the previous one
			overlapContent := ""
			if currentChunk.Len() > overlap {
				overlapContent = currentChunk.String()[currentChunk.Len()-overlap:]
			}

			currentChunk.Reset()
			currentChunk.WriteString(overlapContent)
			currentChunk.WriteString(part)
			continue
		}

		if currentChunk.Len() > 0 {
			currentChunk.WriteString(splitChar)
		}
		currentChunk.WriteString(part)
	}

	if currentChunk.Len() > 0 {
		chunks = append(chunks, currentChunk.String())
	}

	return chunks
}

func hardCut(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		chunks = append(chunks, text[:limit])
		text = text[limit:]
	}
	if len(text) > 0 {
		chunks = append(chunks, text)
	}
	return chunks
}
