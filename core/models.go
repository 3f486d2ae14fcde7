package core

import "time"

// Document is a record stored in the repository.
// Id is the identity; once a document is stored its id never changes.
// Every other field is optional: nil means the field is absent, which
// is not the same as present-and-empty (see the search predicates).
type Document struct {
	Id      string
	Title   *string
	Content *string
	Author  *Author
	Created *time.Time
}

// Author identifies who wrote a document. Authors are embedded in
// documents and have no independent lifecycle in this store.
// An empty Id means the author id is absent.
type Author struct {
	Id   string
	Name string
}

// Clone returns a deep copy of the document. Mutating the copy (or
// anything it points to) never affects the original.
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	clone := &Document{Id: d.Id}
	if d.Title != nil {
		title := *d.Title
		clone.Title = &title
	}
	if d.Content != nil {
		content := *d.Content
		clone.Content = &content
	}
	if d.Author != nil {
		author := *d.Author
		clone.Author = &author
	}
	if d.Created != nil {
		created := *d.Created
		clone.Created = &created
	}
	return clone
}

// SearchRequest describes a filter over stored documents. Every field
// is optional; a nil or empty field constrains nothing. Within a
// field, candidate values are OR-ed together; across fields the
// predicates are AND-ed.
type SearchRequest struct {
	TitlePrefixes    []string
	ContainsContents []string
	AuthorIds        []string
	CreatedFrom      *time.Time // inclusive lower bound
	CreatedTo        *time.Time // inclusive upper bound
}

// String returns a pointer to v. Convenience for building documents
// with optional fields.
func String(v string) *string {
	return &v
}

// Time returns a pointer to v. Convenience for building documents and
// search requests with optional timestamps.
func Time(v time.Time) *time.Time {
	return &v
}
