package entry

import (
	"encoding/json"
	"time"
)

type wireEntry struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	Source    string    `json:"source,omitempty"`
	Category  string    `json:"category,omitempty"`
	Amount    int64     `json:"amount"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toWire(e Entry, tag string) wireEntry {
	w := wireEntry{
		ID:        e.ID,
		UserID:    e.UserID,
		Type:      tag,
		Icon:      e.Icon,
		Amount:    e.Amount,
		Date:      e.Date,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	if e.Kind == KindExpense {
		w.Category = e.Label
	} else {
		w.Source = e.Label
	}
	return w
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(e, ""))
}

func (t Tagged) MarshalJSON() ([]byte, error) {
	return json.Marshal(toWire(t.Entry, string(t.Kind)))
}
