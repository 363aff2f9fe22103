package store

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"graphotimer/internal/core/model"
)

// JSONStore keeps all entries in a single pretty-printed JSON array.
// A missing file reads as an empty list; a corrupt file is an error, not
// an empty corpus.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) List() ([]model.Entry, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	var entries []model.Entry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", s.path, err)
	}
	return entries, nil
}

func (s *JSONStore) Append(entry model.Entry) error {
	entries, err := s.List()
	if err != nil {
		return err
	}
	entries = append(entries, entry)

	data, err := sonic.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding entries: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}
