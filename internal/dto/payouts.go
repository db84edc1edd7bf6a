package dto

import "encoding/json"

type EarningsResponseDTO struct {
	Message   string          `json:"message" example:"Earnings retrieved successfully"`
	AccountID string          `json:"accountId" example:"acct_123"`
	Earnings  json.RawMessage `json:"earnings" swaggertype:"object"`
}

type TransactionsResponseDTO struct {
	Message      string          `json:"message" example:"Transactions retrieved successfully"`
	AccountID    string          `json:"accountId" example:"acct_123"`
	Transactions json.RawMessage `json:"transactions" swaggertype:"object"`
}

type PingResponseDTO struct {
	Message string `json:"message" example:"pong"`
}
