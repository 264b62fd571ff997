package jsonl

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/eranif/lexilla"
)

// Compile-time interface verification.
var _ lexilla.CaseSaver = (*Saver)(nil)

// Saver writes corpus files.
type Saver struct{}

// NewSaver creates a new Saver.
func NewSaver() *Saver {
	return &Saver{}
}

// Save writes the complete corpus to path, one JSON record per line. The
// write goes through a temporary file in the same directory so an
// interrupted save never truncates an existing corpus.
func (s *Saver) Save(path string, cases []lexilla.Case) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, c := range cases {
		if err := enc.Encode(c); err != nil {
			return err
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
