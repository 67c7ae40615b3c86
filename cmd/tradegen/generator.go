package main

import (
	"math/rand"

	"github.com/google/uuid"
)

// quantity ranges per instrument type; anything unlisted uses the default.
var qtyRange = map[string][2]int{
	"FOREX":       {1000, 100000},
	"CRYPTO":      {1, 10},
	"STOCK":       {1, 50},
	"OPTION_CALL": {1, 20},
	"OPTION_PUT":  {1, 20},
	"CFD":         {1, 25},
}

var defaultQtyRange = [2]int{1, 10}

var sides = []string{"BUY", "SELL"}

type generator struct {
	rng          *rand.Rand
	users        []user
	instruments  []instrument
	invalidRatio float64
}

func newGenerator(rng *rand.Rand, users []user, instruments []instrument, invalidRatio float64) *generator {
	return &generator{rng: rng, users: users, instruments: instruments, invalidRatio: invalidRatio}
}

func pick[T any](rng *rand.Rand, xs []T) T { return xs[rng.Intn(len(xs))] }

// next returns a trade request and whether it was built to be rejected.
func (g *generator) next() (tradeRequest, bool) {
	u := pick(g.rng, g.users)
	in := pick(g.rng, g.instruments)

	r, ok := qtyRange[in.Type]
	if !ok {
		r = defaultQtyRange
	}
	req := tradeRequest{
		UserID:       u.ID,
		InstrumentID: in.ID,
		Quantity:     r[0] + g.rng.Intn(r[1]-r[0]+1),
		Side:         pick(g.rng, sides),
	}

	if g.invalidRatio <= 0 || g.rng.Float64() >= g.invalidRatio {
		return req, false
	}
	switch g.rng.Intn(3) {
	case 0:
		req.Quantity = -req.Quantity
	case 1:
		req.UserID = uuid.NewString()
	default:
		req.InstrumentID = uuid.NewString()
	}
	return req, true
}
