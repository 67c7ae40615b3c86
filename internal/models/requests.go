package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/example/market-mock-api/internal/domain"
)

// InstrumentCreateRequest is the body of POST /instruments. Pointers mark
// fields whose absence must be told apart from a zero value.
type InstrumentCreateRequest struct {
	Name   string                 `json:"name" binding:"required"`
	Type   *domain.InstrumentType `json:"type" binding:"required"`
	Symbol string                 `json:"symbol" binding:"required"`
	Price  *decimal.Decimal       `json:"price" binding:"required"`
}

// InstrumentUpdateRequest is the body of PUT /instruments/{id}. A nil field
// leaves the stored value untouched.
type InstrumentUpdateRequest struct {
	Name   *string                `json:"name"`
	Type   *domain.InstrumentType `json:"type"`
	Symbol *string                `json:"symbol"`
	Price  *decimal.Decimal       `json:"price"`
}

// Merge returns dst with every supplied field of r applied.
func (r InstrumentUpdateRequest) Merge(dst Instrument) Instrument {
	if r.Name != nil {
		dst.Name = *r.Name
	}
	if r.Type != nil {
		dst.Type = *r.Type
	}
	if r.Symbol != nil {
		dst.Symbol = *r.Symbol
	}
	if r.Price != nil {
		dst.Price = *r.Price
	}
	return dst
}

type TradeCreateRequest struct {
	UserID       *uuid.UUID        `json:"userId" binding:"required"`
	InstrumentID *uuid.UUID        `json:"instrumentId" binding:"required"`
	Quantity     *int              `json:"quantity" binding:"required"`
	Side         *domain.TradeSide `json:"side" binding:"required"`
}
