package amqp

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"finmind/internal/core"
)

// ReminderMessage announces that an item needs attention: it is overdue,
// due today, or inside its reminder window.
type ReminderMessage struct {
	ItemID    string           `json:"item_id"`
	Name      string           `json:"name"`
	Type      core.ItemType    `json:"type"`
	Amount    decimal.Decimal  `json:"amount"`
	DueDate   string           `json:"due_date"`
	Priority  core.Priority    `json:"priority"`
	State     core.StatusState `json:"state"`
	Days      int              `json:"days"`
	Timestamp time.Time        `json:"timestamp"`
}

// NewReminderMessage builds a reminder from an item and its status.
func NewReminderMessage(item core.FinancialItem, status core.Status) *ReminderMessage {
	return &ReminderMessage{
		ItemID:    item.ID,
		Name:      item.Name,
		Type:      item.Type,
		Amount:    item.Amount,
		DueDate:   item.DueDate,
		Priority:  item.Priority,
		State:     status.State,
		Days:      status.Days,
		Timestamp: time.Now(),
	}
}

func (m *ReminderMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func ReminderMessageFromJSON(data []byte) (*ReminderMessage, error) {
	var msg ReminderMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
