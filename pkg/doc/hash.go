package doc

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Hash returns a deterministic BLAKE3 hash of the document content.
// Path is deliberately excluded: moving a file must not invalidate
// snapshot dedup.
func (d Document) Hash() string {
	h := blake3.New()
	h.Write([]byte(d.Text))
	return hex.EncodeToString(h.Sum(nil))
}

// HashText hashes raw markdown text the same way Document.Hash does.
func HashText(text string) string {
	return Document{Text: text}.Hash()
}
