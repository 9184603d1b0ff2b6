package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"careline/schema"
)

func testOrders() []schema.OrderRecord {
	return []schema.OrderRecord{
		{
			OrderID:     "APT-12345",
			OrderType:   "Appointment",
			PatientName: "John Smith",
			Status:      "Confirmed",
			Date:        "2024-01-15",
			Time:        "10:30 AM",
			Details:     "Annual check-up with Dr. Johnson",
			Location:    "Main Clinic, Room 205",
		},
		{
			OrderID:     "LAB-67890",
			OrderType:   "Lab Test",
			PatientName: "John Smith",
			Status:      "Ready for pickup",
			Date:        "2024-01-10",
			Time:        schema.TimeSentinel,
			Details:     "Complete blood count results",
			Location:    "Lab Services, 1st Floor",
		},
	}
}

func TestExtractOrderID(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{"Where is my order APT-12345?", "APT-12345"},
		{"is lab-67890 ready", "LAB-67890"},
		{"status of RX-11223 please", "RX-11223"},
		{"check APT-12345 and LAB-67890", "APT-12345"}, // first match
		{"order A-12345", ""},                          // prefix too short
		{"order ABCD-12345", ""},                       // prefix too long
		{"order APT-1234", ""},                         // too few digits
		{"xAPT-12345", ""},                             // no word boundary
		{"what are your hours", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ExtractOrderID(tc.query), "query %q", tc.query)
	}
}

func TestOrderStore_Search(t *testing.T) {
	s := NewOrderStore(testOrders())

	t.Run("found with time", func(t *testing.T) {
		got := s.Search("Where is my order APT-12345?")
		want := "Order APT-12345 - Appointment\n" +
			"Patient: John Smith\n" +
			"Status: Confirmed\n" +
			"Date & Time: 2024-01-15 at 10:30 AM\n" +
			"Details: Annual check-up with Dr. Johnson\n" +
			"Location: Main Clinic, Room 205"
		assert.Equal(t, want, got)
	})

	t.Run("found without time", func(t *testing.T) {
		got := s.Search("Is my lab test LAB-67890 ready?")
		want := "Order LAB-67890 - Lab Test\n" +
			"Patient: John Smith\n" +
			"Status: Ready for pickup\n" +
			"Date: 2024-01-10\n" +
			"Details: Complete blood count results\n" +
			"Location: Lab Services, 1st Floor"
		assert.Equal(t, want, got)
	})

	t.Run("unknown id names the id", func(t *testing.T) {
		got := s.Search("check APT-99999")
		assert.Equal(t, fmt.Sprintf(notFoundAnswerFmt, "APT-99999"), got)
		assert.Contains(t, got, "APT-99999")
	})

	t.Run("no id prompts for one", func(t *testing.T) {
		assert.Equal(t, noIDAnswer, s.Search("where is my order"))
	})

	t.Run("lowercase id still resolves", func(t *testing.T) {
		got := s.Search("is apt-12345 confirmed?")
		assert.Contains(t, got, "Order APT-12345 - Appointment")
	})
}

func TestOrderStore_DuplicateIDFirstWins(t *testing.T) {
	s := NewOrderStore([]schema.OrderRecord{
		{OrderID: "APT-12345", OrderType: "Appointment", Status: "Confirmed", Time: schema.TimeSentinel},
		{OrderID: "APT-12345", OrderType: "Appointment", Status: "Cancelled", Time: schema.TimeSentinel},
	})
	assert.Contains(t, s.Search("APT-12345"), "Status: Confirmed")
}

func TestOrderStore_Empty(t *testing.T) {
	s := NewOrderStore(nil)
	assert.Equal(t, 0, s.Len())
	got := s.Search("Where is APT-12345?")
	assert.Equal(t, fmt.Sprintf(notFoundAnswerFmt, "APT-12345"), got)
}
