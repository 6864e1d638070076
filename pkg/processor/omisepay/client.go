package omisepay

import (
	"context"
	"fmt"

	"github.com/omise/omise-go"
	"github.com/omise/omise-go/operations"

	"github.com/dlevine/gig-marketplace/pkg/processor"
)

// Client implements the PaymentProcessor interface against the Omise API.
// Holds are uncaptured charges: created with capture off, captured at
// settlement, reversed on cancellation.
type Client struct {
	omc *omise.Client
}

// New creates a new Client from the Omise key pair.
func New(publicKey, secretKey string) (*Client, error) {
	omc, err := omise.NewClient(publicKey, secretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create omise client: %w", err)
	}
	omc.SetDebug(false)
	return &Client{omc: omc}, nil
}

// Make sure we conform to the interface
var _ processor.PaymentProcessor = (*Client)(nil)

// CreateHold pre-authorizes the amount as an uncaptured charge.
func (c *Client) CreateHold(ctx context.Context, req processor.HoldRequest) (*processor.PaymentIntent, error) {
	ch := &omise.Charge{}
	create := &operations.CreateCharge{
		Amount:      req.AmountCents,
		Currency:    req.Currency,
		Card:        req.CardToken,
		DontCapture: true,
		Metadata:    map[string]interface{}{"gig_id": req.GigID},
	}
	if err := c.omc.Do(ch, create); err != nil {
		return nil, fmt.Errorf("failed to create hold for gig %s: %w", req.GigID, err)
	}
	if string(ch.Status) == "failed" {
		return nil, holdFailure(ch)
	}
	return toIntent(ch), nil
}

// RetrieveIntent fetches the current state of a charge.
func (c *Client) RetrieveIntent(ctx context.Context, intentID string) (*processor.PaymentIntent, error) {
	ch := &omise.Charge{}
	if err := c.omc.Do(ch, &operations.RetrieveCharge{ChargeID: intentID}); err != nil {
		return nil, fmt.Errorf("failed to retrieve intent %s: %w", intentID, err)
	}
	return toIntent(ch), nil
}

// CancelIntent reverses an uncaptured charge, releasing the hold.
func (c *Client) CancelIntent(ctx context.Context, intentID string) error {
	ch := &omise.Charge{}
	if err := c.omc.Do(ch, &operations.ReverseCharge{ChargeID: intentID}); err != nil {
		return fmt.Errorf("failed to reverse intent %s: %w", intentID, err)
	}
	return nil
}

// CaptureIntent captures a held charge.
func (c *Client) CaptureIntent(ctx context.Context, intentID string) (*processor.PaymentIntent, error) {
	ch := &omise.Charge{}
	if err := c.omc.Do(ch, &operations.CaptureCharge{ChargeID: intentID}); err != nil {
		return nil, fmt.Errorf("failed to capture intent %s: %w", intentID, err)
	}
	if string(ch.Status) == "failed" {
		return nil, holdFailure(ch)
	}
	return toIntent(ch), nil
}

func toIntent(ch *omise.Charge) *processor.PaymentIntent {
	return &processor.PaymentIntent{
		Id:          ch.ID,
		AmountCents: ch.Amount,
		Currency:    ch.Currency,
		Status:      string(ch.Status),
		Captured:    ch.Paid,
	}
}

func holdFailure(ch *omise.Charge) error {
	var code, message string
	if ch.FailureCode != nil {
		code = *ch.FailureCode
	}
	if ch.FailureMessage != nil {
		message = *ch.FailureMessage
	}
	return fmt.Errorf("charge %s failed: %s (%s)", ch.ID, message, code)
}
