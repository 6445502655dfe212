package commands

import (
	"context"
	"io"
	"time"
)

// PaymentGateway is the hosted checkout provider.
type PaymentGateway interface {
	// KeyID is the public key the client opens the checkout with.
	KeyID() string
	CreateOrder(ctx context.Context, req OrderRequest) (*Order, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
	CreatePayout(ctx context.Context, req PayoutRequest) (*PayoutResult, error)
}

type OrderRequest struct {
	AmountPaise int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

type Order struct {
	ID          string
	AmountPaise int64
	Currency    string
}

type PayoutRequest struct {
	AmountPaise   int64
	Currency      string
	AccountName   string
	AccountNumber string
	IFSC          string
	Reference     string
	Narration     string
}

type PayoutResult struct {
	ID     string
	Status string
}

type Mail struct {
	To       string
	Subject  string
	HTMLBody string
}

type Mailer interface {
	Send(ctx context.Context, m Mail) error
}

// BlobStore keeps uploaded documents and returns the URL they are served from.
type BlobStore interface {
	Put(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// Background runs work that must not hold up or fail the request.
type Background interface {
	Go(name string, fn func(ctx context.Context) error)
}

// BookingPolicy carries the booking rules taken from configuration.
type BookingPolicy struct {
	CancellationWindow time.Duration
	Currency           string
}

type PayoutPolicy struct {
	Enabled    bool
	Commission float64
	Currency   string
}
