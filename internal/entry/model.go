package entry

import (
	"errors"
	"time"
)

// Kind discriminates the two record collections.
type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) Valid() bool {
	return k == KindIncome || k == KindExpense
}

// Entry is a single dated, amount-bearing financial record. Income and
// expense rows share this shape; Kind picks the collection and decides
// whether Label is serialized as "source" or "category".
type Entry struct {
	ID        string
	UserID    string
	Kind      Kind
	Icon      string
	Label     string
	Amount    int64 // minor units, never negative
	Date      time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Tagged is an Entry annotated with its kind for the merged recent feed.
// The tag is derived at read time, it is not stored.
type Tagged struct {
	Entry
}

var ErrNotFound = errors.New("entry not found")

var dateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseDate accepts the date formats clients send: plain YYYY-MM-DD or RFC3339.
func ParseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
