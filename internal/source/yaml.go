package source

import (
	"errors"
	"fmt"
	"io"

	"github.com/bryan-cox/repohours/internal/model"
	"gopkg.in/yaml.v3"
)

// ReadYAML reads an entry log written as a YAML sequence of mappings with
// repo, date, time and task keys. An empty document yields no entries.
func ReadYAML(r io.Reader) ([]model.RawEntry, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	seq := doc.Content[0]
	if seq.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a list of entries at line %d", ErrUnreadable, seq.Line)
	}

	entries := make([]model.RawEntry, 0, len(seq.Content))
	for _, node := range seq.Content {
		var entry model.RawEntry
		if node.Kind == yaml.MappingNode {
			// A mapping with the wrong value types is left for normalization to reject.
			_ = node.Decode(&entry)
		}
		entry.Line = node.Line
		entries = append(entries, entry)
	}
	return entries, nil
}
