package store

import (
	"fmt"
	"strings"

	"careline/schema"
)

const (
	noIDAnswer = "I couldn't find an order ID in your query. " +
		"Please provide an order ID (e.g., APT-12345, LAB-67890, or RX-11223)."

	notFoundAnswerFmt = "I couldn't find any order with ID %s. " +
		"Please check the order ID and try again, or contact our office at (555) 123-4567."
)

// OrderStore answers order-status questions by extracting an order ID from
// the query and scanning an immutable record list for an exact match.
// Records are kept in load order; when two records share an ID the first
// one wins, which is a property of the dataset rather than a guarantee of
// this store. Safe for concurrent readers.
type OrderStore struct {
	orders []schema.OrderRecord
}

// NewOrderStore builds a store over the given records. A nil or empty
// slice is valid; every search with an ID then reports the order as not
// found.
func NewOrderStore(records []schema.OrderRecord) *OrderStore {
	return &OrderStore{orders: records}
}

// Len reports the number of loaded records.
func (s *OrderStore) Len() int { return len(s.orders) }

// ExtractOrderID returns the first order ID found in the query, matching
// the pattern against the uppercased text, or "" when none is present.
func ExtractOrderID(query string) string {
	m := schema.OrderIDPattern.FindStringSubmatch(strings.ToUpper(query))
	if m == nil {
		return ""
	}
	return m[1]
}

// Search extracts an order ID from the query and returns the formatted
// order detail, a not-found message naming the extracted ID, or a prompt
// to supply an ID. Search never fails.
func (s *OrderStore) Search(query string) string {
	orderID := ExtractOrderID(query)
	if orderID == "" {
		return noIDAnswer
	}

	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			return formatOrder(s.orders[i])
		}
	}
	return fmt.Sprintf(notFoundAnswerFmt, orderID)
}

// formatOrder renders one order as the multi-line detail text. Field
// presence and order are fixed; downstream consumers parse this layout.
func formatOrder(o schema.OrderRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order %s - %s\n", o.OrderID, o.OrderType)
	fmt.Fprintf(&b, "Patient: %s\n", o.PatientName)
	fmt.Fprintf(&b, "Status: %s\n", o.Status)
	if o.Time != schema.TimeSentinel {
		fmt.Fprintf(&b, "Date & Time: %s at %s\n", o.Date, o.Time)
	} else {
		fmt.Fprintf(&b, "Date: %s\n", o.Date)
	}
	fmt.Fprintf(&b, "Details: %s\n", o.Details)
	fmt.Fprintf(&b, "Location: %s", o.Location)
	return b.String()
}
