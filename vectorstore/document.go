// Copyright (c) Microsoft. All rights reserved.

package vectorstore

import "strings"

// Document is a unit of retrievable text. Metadata holds filterable
// attributes such as source or page. Once added to a store, a document and
// its embedding are immutable.
type Document struct {
	ID       string            `json:"id"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Splitter cuts text into overlapping character chunks. Chunks break on
// whitespace where possible so words stay intact.
type Splitter struct {
	// ChunkSize is the maximum chunk length in characters. Zero means 500.
	ChunkSize int

	// ChunkOverlap is how many trailing characters each chunk shares with
	// the next. Must be smaller than ChunkSize.
	ChunkOverlap int
}

// Split cuts text into chunks. Leading and trailing whitespace is trimmed
// from each chunk; empty chunks are dropped.
func (s Splitter) Split(text string) []string {
	size := s.ChunkSize
	if size <= 0 {
		size = 500
	}
	overlap := s.ChunkOverlap
	if overlap >= size {
		overlap = size / 2
	}

	runes := []rune(text)
	var chunks []string

	for start := 0; start < len(runes); {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		} else if end < len(runes) {
			// Back up to the nearest whitespace so words stay whole. The end
			// of the text is already a word boundary.
			cut := end
			for cut > start && !isSpace(runes[cut-1]) && !isSpace(runes[cut]) {
				cut--
			}
			if cut > start {
				end = cut
			}
		}

		chunk := strings.TrimSpace(string(runes[start:end]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}

		if end == len(runes) {
			break
		}
		next := end - overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks
}

// SplitDocuments splits each document's content, producing one document per
// chunk. Chunk documents inherit the parent's metadata plus its ID under the
// "parent" key when the parent has one.
func (s Splitter) SplitDocuments(docs []Document) []Document {
	var out []Document
	for _, doc := range docs {
		for _, chunk := range s.Split(doc.Content) {
			meta := make(map[string]string, len(doc.Metadata)+1)
			for k, v := range doc.Metadata {
				meta[k] = v
			}
			if doc.ID != "" {
				meta["parent"] = doc.ID
			}
			out = append(out, Document{Content: chunk, Metadata: meta})
		}
	}
	return out
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
