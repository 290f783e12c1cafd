// Package filesystem stores parsed documents as one JSON file per document
// in a directory. It is the format the Python export pipeline writes.
package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	sent "github.com/revelaction/whodidwhat/sentence"
	"github.com/revelaction/whodidwhat/storage"
)

type DocStore struct {
	docDir string

	// file names in id order
	names []string
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store over a directory of
// *.json docs. Doc ids are the positions in the sorted file name list.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, file := range files {
		if filepath.Ext(file.Name()) == ".json" {
			names = append(names, file.Name())
		}
	}

	sort.Strings(names)

	return &DocStore{docDir: docDir, names: names}, nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	docs := make([]sent.Doc, 0, len(h.names))
	for id, name := range h.names {
		docs = append(docs, sent.Doc{Id: id, Title: name})
	}

	return docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.names) {
		return sent.Doc{}, fmt.Errorf("doc id out of range: %d", id)
	}

	doc, err := ReadDoc(filepath.Join(h.docDir, h.names[id]))
	if err != nil {
		return sent.Doc{}, err
	}

	doc.Id = id
	if doc.Title == "" {
		doc.Title = h.names[id]
	}

	return doc, nil
}

func (h *DocStore) Write(doc sent.Doc) error {
	if doc.Title == "" {
		return fmt.Errorf("doc needs a title to be written")
	}

	name := doc.Title
	if filepath.Ext(name) != ".json" {
		name += ".json"
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(h.docDir, name), data, 0o644); err != nil {
		return err
	}

	for _, n := range h.names {
		if n == name {
			return nil
		}
	}

	h.names = append(h.names, name)
	sort.Strings(h.names)
	return nil
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	return doc, nil
}
