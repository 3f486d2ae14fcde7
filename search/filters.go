package search

import (
	"strings"
	"time"

	"github.com/innovatel/docstore/core"
)

// Each predicate mirrors one clause of core.SearchRequest. An absent
// or empty clause passes every document; a present clause requires the
// corresponding document field to be present as well.

func titleMatches(doc *core.Document, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	if doc.Title == nil {
		return false
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(*doc.Title, prefix) {
			return true
		}
	}
	return false
}

func contentMatches(doc *core.Document, substrings []string) bool {
	if len(substrings) == 0 {
		return true
	}
	if doc.Content == nil {
		return false
	}
	for _, substring := range substrings {
		if strings.Contains(*doc.Content, substring) {
			return true
		}
	}
	return false
}

func authorMatches(doc *core.Document, authorIds []string) bool {
	if len(authorIds) == 0 {
		return true
	}
	if doc.Author == nil || doc.Author.Id == "" {
		return false
	}
	for _, id := range authorIds {
		// Empty candidate ids mean "absent" and never contribute a match.
		if id != "" && id == doc.Author.Id {
			return true
		}
	}
	return false
}

// createdInRange checks both bounds inclusively. A set bound fails a
// document whose Created is absent.
func createdInRange(doc *core.Document, from, to *time.Time) bool {
	created := doc.Created
	if from != nil && (created == nil || created.Before(*from)) {
		return false
	}
	if to != nil && (created == nil || created.After(*to)) {
		return false
	}
	return true
}
