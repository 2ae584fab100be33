package domain

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status is the fulfilment state of an order. Values outside the known set are kept as is.
type Status string

const (
	StatusCompleted Status = "Completado"
	StatusPending   Status = "Pendiente"
	StatusCancelled Status = "Cancelado"
)

// Known reports whether s is one of the three fulfilment states.
func (s Status) Known() bool {
	switch s {
	case StatusCompleted, StatusPending, StatusCancelled:
		return true
	}
	return false
}

const dayLayout = time.DateOnly

// Day is a calendar date serialised as YYYY-MM-DD.
type Day struct {
	time.Time
}

// NewDay truncates to the calendar date in UTC.
func NewDay(year int, month time.Month, day int) Day {
	return Day{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Day) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(d.Format(dayLayout))
}

func (d *Day) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dayLayout, raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// Order is a read-only purchase record.
type Order struct {
	ID       string          `json:"id"`
	Date     Day             `json:"fecha"`
	Customer string          `json:"cliente"`
	Total    decimal.Decimal `json:"total"`
	Status   Status          `json:"estado"`
}

var (
	ErrEmptyID       = errors.New("order id is required")
	ErrNegativeTotal = errors.New("order total must be greater or equal to zero")
)

// Validate enforces the order invariants.
func (o Order) Validate() error {
	if strings.TrimSpace(o.ID) == "" {
		return ErrEmptyID
	}
	if o.Total.IsNegative() {
		return ErrNegativeTotal
	}
	return nil
}
