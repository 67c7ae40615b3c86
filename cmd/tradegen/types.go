package main

import "time"

// tradeRequest is the body of POST /trades.
type tradeRequest struct {
	UserID       string `json:"userId"`
	InstrumentID string `json:"instrumentId"`
	Quantity     int    `json:"quantity"`
	Side         string `json:"side"` // "BUY" | "SELL"
}

type trade struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	InstrumentID string    `json:"instrumentId"`
	Quantity     int       `json:"quantity"`
	Side         string    `json:"side"`
	Timestamp    time.Time `json:"timestamp"`
}

type user struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type instrument struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Symbol string `json:"symbol"`
}

// envelope mirrors the API response wrapper.
type envelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}
