package store

import (
	"strings"

	"careline/schema"
)

// FallbackAnswer is returned when no FAQ keyword matches the query.
const FallbackAnswer = "I couldn't find a specific answer to your question. " +
	"Please contact our office at (555) 123-4567 for assistance, " +
	"or rephrase your question."

// FAQStore answers general questions by keyword-scored lookup over an
// immutable record list. Safe for concurrent readers.
type FAQStore struct {
	faqs []schema.FAQRecord
}

// NewFAQStore builds a store over the given records. A nil or empty slice
// is valid; every search then returns the fallback answer.
func NewFAQStore(records []schema.FAQRecord) *FAQStore {
	return &FAQStore{faqs: records}
}

// Len reports the number of loaded records.
func (s *FAQStore) Len() int { return len(s.faqs) }

// Search scores every record by how many of its keywords appear in the
// lowercased query (substring containment) and returns the answer of the
// record with the strictly highest score. Ties keep the earlier record.
// A best score of zero yields the fallback answer. Search never fails.
func (s *FAQStore) Search(query string) string {
	queryLower := strings.ToLower(query)

	var best *schema.FAQRecord
	highest := 0
	for i := range s.faqs {
		score := 0
		for _, kw := range s.faqs[i].Keywords {
			if strings.Contains(queryLower, strings.ToLower(kw)) {
				score++
			}
		}
		if score > highest {
			highest = score
			best = &s.faqs[i]
		}
	}

	if best != nil && highest > 0 {
		return best.Answer
	}
	return FallbackAnswer
}
