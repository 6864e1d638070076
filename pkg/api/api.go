// Package api defines the request and response shapes served over HTTP.
package api

import (
	"encoding/json"
	"time"
)

// NewGig is the request body for booking a gig.
type NewGig struct {
	Title            string          `json:"title"`
	BuyerExternalId  string          `json:"buyer_external_id"`
	WorkerExternalId string          `json:"worker_external_id,omitempty"`
	StartAt          time.Time       `json:"start_at"`
	EndAt            time.Time       `json:"end_at"`
	ExpiresAt        *time.Time      `json:"expires_at,omitempty"`
	HourlyRateCents  int64           `json:"hourly_rate_cents"`
	TotalPriceCents  int64           `json:"total_price_cents"`
	Location         json.RawMessage `json:"location,omitempty"`
	CardToken        string          `json:"card_token"`
}

// Gig is the API representation of a gig.
type Gig struct {
	Id              string     `json:"id"`
	Title           string     `json:"title"`
	BuyerUserId     string     `json:"buyer_user_id"`
	WorkerUserId    *string    `json:"worker_user_id,omitempty"`
	StartAt         time.Time  `json:"start_at"`
	EndAt           time.Time  `json:"end_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	HourlyRateCents int64      `json:"hourly_rate_cents"`
	TotalPriceCents int64      `json:"total_price_cents"`
	TipCents        int64      `json:"tip_cents"`
	Location        *Location  `json:"location,omitempty"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Location is the normalized location shape returned to clients.
type Location struct {
	Kind    string  `json:"kind"`
	Lat     float64 `json:"lat,omitempty"`
	Lng     float64 `json:"lng,omitempty"`
	Address string  `json:"address,omitempty"`
	Raw     string  `json:"raw,omitempty"`
}

// Payment is the API representation of a payment row.
type Payment struct {
	Id               string    `json:"id"`
	GigId            string    `json:"gig_id"`
	PaymentIntentId  *string   `json:"payment_intent_id,omitempty"`
	PayerUserId      string    `json:"payer_user_id"`
	ReceiverUserId   string    `json:"receiver_user_id,omitempty"`
	AmountGrossCents int64     `json:"amount_gross_cents"`
	AppFeeCents      int64     `json:"app_fee_cents"`
	AmountNetCents   int64     `json:"amount_net_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// WorkerAction is the request body for worker-initiated offer actions
// (accept, decline, start).
type WorkerAction struct {
	WorkerExternalId string `json:"worker_external_id"`
}

// StatusUpdate is the request body for the generalized offer transition.
type StatusUpdate struct {
	ActorExternalId string `json:"actor_external_id"`
	Role            string `json:"role"`
	Action          string `json:"action"`
}

// Completion is the request body for completion requests and confirmations.
type Completion struct {
	ActorExternalId string `json:"actor_external_id"`
	Role            string `json:"role"`
}

// ActionResponse is the uniform body returned by every transition endpoint.
type ActionResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
