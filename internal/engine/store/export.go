package store

import (
	"github.com/tidwall/sjson"

	"github.com/nioark/mentions/internal/engine/text"
)

// Record is the exported form of a mention.
type Record struct {
	EntryID     string      `json:"entry_id"`
	DisplayText string      `json:"display_text"`
	Start       text.Offset `json:"start"`
	End         text.Offset `json:"end"`
}

// Export returns one record per mention in store order.
func (s *Store) Export() []Record {
	out := make([]Record, 0, len(s.mentions))
	for _, m := range s.mentions {
		out = append(out, Record{
			EntryID:     m.EntryID(),
			DisplayText: m.Display,
			Start:       m.Start,
			End:         m.End,
		})
	}
	return out
}

// ExportJSON encodes the mentions as {"mentions": [...]}.
func (s *Store) ExportJSON() (string, error) {
	doc := `{"mentions":[]}`
	var err error
	for _, r := range s.Export() {
		doc, err = sjson.Set(doc, "mentions.-1", r)
		if err != nil {
			return "", err
		}
	}
	return doc, nil
}
