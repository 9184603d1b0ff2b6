package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careline/config"
	"careline/schema"
)

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestLoadOrders_DegradesToEmpty(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		assert.Empty(t, LoadOrders(filepath.Join(t.TempDir(), "nope.json")))
	})

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "orders.json")
		require.NoError(t, writeFile(path, `{"orders":[{"order_id":"APT-12345","order_type":"Appointment","status":"Confirmed","time":"N/A"}]}`))
		got := LoadOrders(path)
		require.Len(t, got, 1)
		assert.Equal(t, "APT-12345", got[0].OrderID)
	})
}

func TestNewStoresFromConfig_JSON(t *testing.T) {
	dir := t.TempDir()
	faqPath := filepath.Join(dir, "faq.json")
	orderPath := filepath.Join(dir, "orders.json")
	require.NoError(t, writeFile(faqPath, `{"faqs":[{"keywords":["hours"],"answer":"8-6"}]}`))
	require.NoError(t, writeFile(orderPath, `{"orders":[{"order_id":"RX-11223","time":"N/A"}]}`))

	faqs, orders := NewStoresFromConfig(config.DataConfig{
		FAQPath:       faqPath,
		OrderPath:     orderPath,
		OrderProvider: "json",
	})
	assert.Equal(t, 1, faqs.Len())
	assert.Equal(t, 1, orders.Len())
}

func TestSQLiteOrders_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.db")
	seed := []schema.OrderRecord{
		{OrderID: "APT-12345", OrderType: "Appointment", Status: "Confirmed", Date: "2024-01-15", Time: "10:30 AM"},
		{OrderID: "LAB-67890", OrderType: "Lab Test", Status: "Ready for pickup", Date: "2024-01-10", Time: schema.TimeSentinel},
	}
	require.NoError(t, SeedOrderDB(path, seed))

	got := LoadOrdersFromSQLite(path)
	require.Len(t, got, 2)
	assert.Equal(t, seed[0], got[0])
	assert.Equal(t, seed[1], got[1])

	s := NewOrderStore(got)
	assert.Contains(t, s.Search("is LAB-67890 ready"), "Ready for pickup")
}

func TestLoadOrdersFromSQLite_MissingDB(t *testing.T) {
	// The sqlite driver creates an empty database on open, so a missing
	// path reports no rows rather than an error.
	got := LoadOrdersFromSQLite(filepath.Join(t.TempDir(), "fresh.db"))
	assert.Empty(t, got)
}
