package schema

import "regexp"

// Intent is the classification label assigned to a query.
type Intent string

const (
	IntentFAQ         Intent = "faq"
	IntentOrderStatus Intent = "order_status"
)

// Valid reports whether the intent is one of the two known labels.
func (i Intent) Valid() bool {
	return i == IntentFAQ || i == IntentOrderStatus
}

// OrderIDPattern matches order identifiers such as APT-12345, LAB-67890
// or RX-11223: two or three uppercase letters, a hyphen, exactly five
// digits, bounded by word boundaries. Callers match against the
// uppercased query.
var OrderIDPattern = regexp.MustCompile(`\b([A-Z]{2,3}-\d{5})\b`)

// FAQRecord is a single FAQ entry. Keywords are matched case-insensitively
// as substrings of the query.
type FAQRecord struct {
	Keywords []string `json:"keywords" yaml:"keywords"`
	Answer   string   `json:"answer" yaml:"answer"`
}

// OrderRecord describes one appointment, lab test or prescription order.
// Time uses the sentinel "N/A" when the order has no scheduled time.
type OrderRecord struct {
	OrderID     string `json:"order_id" yaml:"order_id"`
	OrderType   string `json:"order_type" yaml:"order_type"`
	PatientName string `json:"patient_name" yaml:"patient_name"`
	Status      string `json:"status" yaml:"status"`
	Date        string `json:"date" yaml:"date"`
	Time        string `json:"time" yaml:"time"`
	Details     string `json:"details" yaml:"details"`
	Location    string `json:"location" yaml:"location"`
}

// TimeSentinel marks an order without a scheduled time of day.
const TimeSentinel = "N/A"

// FAQDataset is the persisted envelope for FAQ records.
type FAQDataset struct {
	FAQs []FAQRecord `json:"faqs" yaml:"faqs"`
}

// OrderDataset is the persisted envelope for order records.
type OrderDataset struct {
	Orders []OrderRecord `json:"orders" yaml:"orders"`
}
