package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/market-mock-api/internal/domain"
)

func init() {
	// Prices and balances go over the wire as JSON numbers (0.65, not "0.65").
	decimal.MarshalJSONWithoutQuotes = true
}

type Instrument struct {
	ID     uuid.UUID             `json:"id" yaml:"id"`
	Name   string                `json:"name" yaml:"name"`
	Type   domain.InstrumentType `json:"type" yaml:"type"`
	Symbol string                `json:"symbol" yaml:"symbol"`
	Price  decimal.Decimal       `json:"price" yaml:"price"`
}

func (i Instrument) EntityID() uuid.UUID { return i.ID }
func (i Instrument) WithID(id uuid.UUID) Instrument {
	i.ID = id
	return i
}

type User struct {
	ID       uuid.UUID       `json:"id" yaml:"id"`
	Username string          `json:"username" yaml:"username"`
	Country  string          `json:"country" yaml:"country"`
	Balance  decimal.Decimal `json:"balance" yaml:"balance"`
}

func (u User) EntityID() uuid.UUID { return u.ID }
func (u User) WithID(id uuid.UUID) User {
	u.ID = id
	return u
}

type Trade struct {
	ID           uuid.UUID        `json:"id" yaml:"id"`
	UserID       uuid.UUID        `json:"userId" yaml:"userId"`
	InstrumentID uuid.UUID        `json:"instrumentId" yaml:"instrumentId"`
	Quantity     int              `json:"quantity" yaml:"quantity"`
	Side         domain.TradeSide `json:"side" yaml:"side"`
	Timestamp    time.Time        `json:"timestamp" yaml:"timestamp"`
}

func (t Trade) EntityID() uuid.UUID { return t.ID }
func (t Trade) WithID(id uuid.UUID) Trade {
	t.ID = id
	return t
}
