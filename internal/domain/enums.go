package domain

import (
	"fmt"
	"strings"
)

// InstrumentType is a closed set of tradable instrument kinds.
type InstrumentType string

const (
	InstrumentForex      InstrumentType = "FOREX"
	InstrumentCrypto     InstrumentType = "CRYPTO"
	InstrumentOptionCall InstrumentType = "OPTION_CALL"
	InstrumentOptionPut  InstrumentType = "OPTION_PUT"
	InstrumentStock      InstrumentType = "STOCK"
	InstrumentCFD        InstrumentType = "CFD"
)

// InstrumentTypes lists every valid InstrumentType in declaration order.
var InstrumentTypes = []InstrumentType{
	InstrumentForex, InstrumentCrypto, InstrumentOptionCall,
	InstrumentOptionPut, InstrumentStock, InstrumentCFD,
}

func (t InstrumentType) String() string { return string(t) }
func (t InstrumentType) Valid() bool {
	switch t {
	case InstrumentForex, InstrumentCrypto, InstrumentOptionCall,
		InstrumentOptionPut, InstrumentStock, InstrumentCFD:
		return true
	default:
		return false
	}
}

func ParseInstrumentType(s string) (InstrumentType, bool) {
	t := InstrumentType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", false
	}
	return t, true
}

func (t InstrumentType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid instrument type %q", string(t))
	}
	return []byte(t), nil
}

func (t *InstrumentType) UnmarshalText(b []byte) error {
	v, ok := ParseInstrumentType(string(b))
	if !ok {
		return fmt.Errorf("invalid instrument type %q", string(b))
	}
	*t = v
	return nil
}

// TradeSide is BUY or SELL.
type TradeSide string

const (
	SideBuy  TradeSide = "BUY"
	SideSell TradeSide = "SELL"
)

func (s TradeSide) String() string { return string(s) }
func (s TradeSide) Valid() bool    { return s == SideBuy || s == SideSell }

func ParseTradeSide(s string) (TradeSide, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return SideBuy, true
	case "SELL":
		return SideSell, true
	default:
		return "", false
	}
}

func (s TradeSide) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("invalid trade side %q", string(s))
	}
	return []byte(s), nil
}

func (s *TradeSide) UnmarshalText(b []byte) error {
	v, ok := ParseTradeSide(string(b))
	if !ok {
		return fmt.Errorf("invalid trade side %q", string(b))
	}
	*s = v
	return nil
}
