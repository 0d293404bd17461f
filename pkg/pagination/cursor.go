package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

var ErrInvalidCursor = errors.New("invalid cursor")

// Cursor marks the last row of a page in (start_at DESC, id DESC) order.
type Cursor struct {
	ID      uuid.UUID `json:"id"`
	StartAt time.Time `json:"start_at"`
}

func (c *Cursor) Encode() string {
	data, _ := json.Marshal(c)
	return base64.RawURLEncoding.EncodeToString(data)
}

// DecodeCursor parses an encoded cursor. Padded input from older clients is accepted.
func DecodeCursor(encoded string) (*Cursor, error) {
	data, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		if data, err = base64.URLEncoding.DecodeString(encoded); err != nil {
			return nil, ErrInvalidCursor
		}
	}

	var cursor Cursor
	if err := json.Unmarshal(data, &cursor); err != nil || cursor.ID == uuid.Nil {
		return nil, ErrInvalidCursor
	}
	return &cursor, nil
}

// NormalizeLimit clamps a requested page size into [1, MaxLimit].
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return min(limit, MaxLimit)
}

// Page trims rows fetched with one extra item to the page size and reports
// whether another page exists.
func Page[T any](rows []T, limit int) ([]T, bool) {
	limit = NormalizeLimit(limit)
	if len(rows) > limit {
		return rows[:limit], true
	}
	return rows, false
}
