package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/schema"
)

func testFAQs() []schema.FAQRecord {
	return []schema.FAQRecord{
		{Keywords: []string{"hours", "open", "close"}, Answer: "We are open 8-6 on weekdays."},
		{Keywords: []string{"insurance", "coverage"}, Answer: "We accept most major insurance plans."},
		{Keywords: []string{"location", "address", "parking"}, Answer: "200 Wellness Way, Suite 110."},
	}
}

func TestFAQStore_Search(t *testing.T) {
	s := NewFAQStore(testFAQs())

	t.Run("single keyword match", func(t *testing.T) {
		assert.Equal(t, "We are open 8-6 on weekdays.", s.Search("What are your hours?"))
	})

	t.Run("case insensitive containment", func(t *testing.T) {
		assert.Equal(t, "We accept most major insurance plans.", s.Search("DO YOU TAKE INSURANCE?"))
	})

	t.Run("highest score wins", func(t *testing.T) {
		// Two keywords from the location record beat one from hours.
		got := s.Search("Is there parking at your address? What hours?")
		assert.Equal(t, "200 Wellness Way, Suite 110.", got)
	})

	t.Run("no match returns fallback", func(t *testing.T) {
		assert.Equal(t, FallbackAnswer, s.Search("Something entirely unrelated"))
	})

	t.Run("deterministic", func(t *testing.T) {
		q := "Do you take insurance?"
		assert.Equal(t, s.Search(q), s.Search(q))
	})
}

func TestFAQStore_TieKeepsFirstRecord(t *testing.T) {
	s := NewFAQStore([]schema.FAQRecord{
		{Keywords: []string{"billing"}, Answer: "first"},
		{Keywords: []string{"billing"}, Answer: "second"},
	})
	// Equal scores must not replace the earlier best record.
	assert.Equal(t, "first", s.Search("billing question"))
}

func TestFAQStore_Empty(t *testing.T) {
	for _, s := range []*FAQStore{NewFAQStore(nil), NewFAQStore([]schema.FAQRecord{})} {
		assert.Equal(t, FallbackAnswer, s.Search("What are your hours?"))
		assert.Equal(t, 0, s.Len())
	}
}

func TestLoadFAQs_DegradesToEmpty(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		assert.Empty(t, LoadFAQs(filepath.Join(t.TempDir(), "nope.json")))
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "faq.json")
		require.NoError(t, writeFile(path, "{not json"))
		assert.Empty(t, LoadFAQs(path))
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "faq.json")
		require.NoError(t, writeFile(path, `{"faqs":[{"keywords":["hours"],"answer":"8-6"}]}`))
		got := LoadFAQs(path)
		require.Len(t, got, 1)
		assert.Equal(t, "8-6", got[0].Answer)
	})
}
