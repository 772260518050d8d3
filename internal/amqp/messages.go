package amqp

import (
	"encoding/json"
	"time"

	"banchi/internal/core"
)

// BillSyncMessage tells the bill worker that a credit card expense was
// recorded and a pending bill must exist for the next due cycle. It
// carries the amount so the worker never re-reads the transaction.
type BillSyncMessage struct {
	TransactionID int64      `json:"transaction_id"`
	Owner         core.Owner `json:"owner"`
	AmountSatang  int64      `json:"amount_satang"`
	Month         int        `json:"month"`
	Year          int        `json:"year"`
	Description   string     `json:"description"`
	Timestamp     time.Time  `json:"timestamp"`
}

func NewBillSyncMessage(tx core.Transaction) *BillSyncMessage {
	return &BillSyncMessage{
		TransactionID: tx.ID,
		Owner:         tx.Owner,
		AmountSatang:  tx.Total.Satang,
		Month:         tx.Month,
		Year:          tx.Year,
		Description:   tx.Description,
		Timestamp:     time.Now(),
	}
}

func (m *BillSyncMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func BillSyncMessageFromJSON(data []byte) (*BillSyncMessage, error) {
	var msg BillSyncMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
