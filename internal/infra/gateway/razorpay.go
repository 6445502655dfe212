package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"find-my-space/internal/pkg/config"
	"find-my-space/internal/pkg/errs"
	"find-my-space/internal/usecase/commands"

	"github.com/razorpay/razorpay-go"
	"github.com/razorpay/razorpay-go/utils"
)

const payoutsURL = "/v1/payouts"

var ErrGatewayResponse = errs.New("unexpected payment gateway response")

// razorpayAPI is the slice of the SDK the gateway calls, kept small so tests can stub it.
type razorpayAPI interface {
	CreateOrder(data map[string]interface{}) (map[string]interface{}, error)
	CreatePayout(data map[string]interface{}, headers map[string]string) (map[string]interface{}, error)
}

type sdkClient struct {
	client *razorpay.Client
}

func (s sdkClient) CreateOrder(data map[string]interface{}) (map[string]interface{}, error) {
	return s.client.Order.Create(data, nil)
}

// CreatePayout posts through the Payout resource's request so composite
// payouts with a fund_account body can be sent.
func (s sdkClient) CreatePayout(data map[string]interface{}, headers map[string]string) (map[string]interface{}, error) {
	return s.client.Payout.Request.Post(payoutsURL, data, headers)
}

type Razorpay struct {
	api           razorpayAPI
	keyID         string
	keySecret     string
	webhookSecret string
	payoutAccount string
	logger        *slog.Logger
}

func NewRazorpay(cfg config.PaymentConfig, logger *slog.Logger) *Razorpay {
	return newRazorpay(sdkClient{client: razorpay.NewClient(cfg.KeyID, cfg.KeySecret)}, cfg, logger)
}

func newRazorpay(api razorpayAPI, cfg config.PaymentConfig, logger *slog.Logger) *Razorpay {
	return &Razorpay{
		api:           api,
		keyID:         cfg.KeyID,
		keySecret:     cfg.KeySecret,
		webhookSecret: cfg.WebhookSecret,
		payoutAccount: cfg.PayoutAccount,
		logger:        logger,
	}
}

func (r *Razorpay) KeyID() string {
	return r.keyID
}

func (r *Razorpay) CreateOrder(ctx context.Context, req commands.OrderRequest) (*commands.Order, error) {
	data := map[string]interface{}{
		"amount":          req.AmountPaise,
		"currency":        req.Currency,
		"receipt":         req.Receipt,
		"payment_capture": 1,
	}
	if len(req.Notes) > 0 {
		data["notes"] = req.Notes
	}

	resp, err := r.call(ctx, func() (map[string]interface{}, error) { return r.api.CreateOrder(data) })
	if err != nil {
		r.logger.Error("razorpay order creation failed", "receipt", req.Receipt, "error", err.Error())
		return nil, errs.Wrap(err, "create razorpay order")
	}

	id, ok := resp["id"].(string)
	if !ok || id == "" {
		return nil, errs.Mark(errs.New("order response without id"), ErrGatewayResponse)
	}
	order := &commands.Order{ID: id, AmountPaise: req.AmountPaise, Currency: req.Currency}
	if amount, ok := resp["amount"].(float64); ok {
		order.AmountPaise = int64(amount)
	}
	if currency, ok := resp["currency"].(string); ok && currency != "" {
		order.Currency = currency
	}
	return order, nil
}

func (r *Razorpay) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	if orderID == "" || paymentID == "" || signature == "" {
		return false
	}
	params := map[string]interface{}{
		"razorpay_order_id":   orderID,
		"razorpay_payment_id": paymentID,
	}
	return utils.VerifyPaymentSignature(params, signature, r.keySecret)
}

func (r *Razorpay) VerifyWebhookSignature(body []byte, signature string) bool {
	if signature == "" || r.webhookSecret == "" {
		return false
	}
	return utils.VerifyWebhookSignature(string(body), signature, r.webhookSecret)
}

// CreatePayout sends a composite payout, so the fund account is created on the fly from the bank details.
func (r *Razorpay) CreatePayout(ctx context.Context, req commands.PayoutRequest) (*commands.PayoutResult, error) {
	if r.payoutAccount == "" {
		return nil, errs.New("payout account is not configured")
	}

	data := map[string]interface{}{
		"account_number": r.payoutAccount,
		"amount":         req.AmountPaise,
		"currency":       req.Currency,
		"mode":           "IMPS",
		"purpose":        "payout",
		"reference_id":   req.Reference,
		"narration":      req.Narration,
		"fund_account": map[string]interface{}{
			"account_type": "bank_account",
			"bank_account": map[string]interface{}{
				"name":           req.AccountName,
				"ifsc":           req.IFSC,
				"account_number": req.AccountNumber,
			},
			"contact": map[string]interface{}{
				"name":         req.AccountName,
				"type":         "vendor",
				"reference_id": req.Reference,
			},
		},
		"queue_if_low_balance": true,
	}
	headers := map[string]string{"X-Payout-Idempotency": req.Reference}

	resp, err := r.call(ctx, func() (map[string]interface{}, error) { return r.api.CreatePayout(data, headers) })
	if err != nil {
		r.logger.Error("razorpay payout failed", "reference", req.Reference, "error", err.Error())
		return nil, errs.Wrap(err, "create razorpay payout")
	}

	id, _ := resp["id"].(string)
	status, _ := resp["status"].(string)
	if id == "" {
		return nil, errs.Mark(fmt.Errorf("payout response without id: %v", resp["error"]), ErrGatewayResponse)
	}
	return &commands.PayoutResult{ID: id, Status: status}, nil
}

// call runs a blocking SDK request but stops waiting once ctx is done.
func (r *Razorpay) call(ctx context.Context, fn func() (map[string]interface{}, error)) (map[string]interface{}, error) {
	type result struct {
		resp map[string]interface{}
		err  error
	}
	done := make(chan result, 1)
	go func() {
		resp, err := fn()
		done <- result{resp: resp, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-done:
		return res.resp, res.err
	}
}
