package storage

import (
	"github.com/revelaction/whodidwhat/relation"
	sent "github.com/revelaction/whodidwhat/sentence"
)

// DocReader defines read operations for parsed document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Sentences) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID, content included
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for parsed document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// RelationReader defines read operations for extracted relation tables
type RelationReader interface {
	// Relations returns the stored relation table of a document.
	// A document without stored relations yields an empty table.
	Relations(docId int) (relation.Table, error)

	// AllRelations returns the stored relations of every document, in
	// (docId, insertion) order.
	AllRelations() (relation.Table, error)
}

// RelationWriter defines write operations for extracted relation tables
type RelationWriter interface {
	// WriteRelations replaces the stored relation table of a document
	WriteRelations(docId int, t relation.Table) error
}

// RelationRepository combines read and write operations
type RelationRepository interface {
	RelationReader
	RelationWriter
}
