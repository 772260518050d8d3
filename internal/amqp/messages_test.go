package amqp

import (
	"testing"
	"time"

	"banchi/internal/core"
)

func TestNewBillSyncMessage(t *testing.T) {
	tx := core.Transaction{
		ID: 42, Month: 3, Year: 2025,
		Owner:       core.OwnerPuri,
		Description: "new phone",
		Total:       core.Money{Satang: 3500000},
	}

	msg := NewBillSyncMessage(tx)
	if msg.TransactionID != 42 {
		t.Errorf("TransactionID = %d, want 42", msg.TransactionID)
	}
	if msg.Owner != core.OwnerPuri {
		t.Errorf("Owner = %q, want puri", msg.Owner)
	}
	if msg.AmountSatang != 3500000 {
		t.Errorf("AmountSatang = %d, want 3500000", msg.AmountSatang)
	}
	if msg.Month != 3 || msg.Year != 2025 {
		t.Errorf("cycle = %d/%d, want 3/2025", msg.Month, msg.Year)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
	if time.Since(msg.Timestamp) > time.Second {
		t.Error("Timestamp should be recent")
	}
}

func TestBillSyncMessage_JSONRoundTrip(t *testing.T) {
	msg := &BillSyncMessage{
		TransactionID: 7,
		Owner:         core.OwnerPhurita,
		AmountSatang:  120000,
		Month:         12,
		Year:          2025,
		Description:   "year-end shopping",
		Timestamp:     time.Date(2025, 12, 28, 9, 0, 0, 0, time.UTC),
	}

	body, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := BillSyncMessageFromJSON(body)
	if err != nil {
		t.Fatalf("BillSyncMessageFromJSON() error = %v", err)
	}
	if parsed.TransactionID != msg.TransactionID || parsed.Owner != msg.Owner ||
		parsed.AmountSatang != msg.AmountSatang || parsed.Month != msg.Month || parsed.Year != msg.Year {
		t.Errorf("round trip lost fields: %+v", parsed)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestBillSyncMessage_InvalidJSON(t *testing.T) {
	if _, err := BillSyncMessageFromJSON([]byte(`{"transaction_id": "nope"}`)); err == nil {
		t.Error("BillSyncMessageFromJSON() should fail with invalid JSON")
	}
}
