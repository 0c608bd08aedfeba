package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cinebooking/config"
	"cinebooking/internal/domain"
)

// Gateway charges a card for a payment order. A call either fully succeeds
// with one receipt or produces no charge.
type Gateway interface {
	Charge(ctx context.Context, order domain.PaymentOrder) (*domain.ChargeReceipt, error)
}

type HTTPGateway struct {
	baseURL string
	secret  string
	client  *http.Client
}

func NewHTTPGateway(cfg config.PaymentConfig) *HTTPGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPGateway{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		secret:  cfg.SecretKey,
		client:  &http.Client{Timeout: timeout},
	}
}

type chargeResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Error    *struct {
		Type    string `json:"type"`
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (g *HTTPGateway) Charge(ctx context.Context, order domain.PaymentOrder) (*domain.ChargeReceipt, error) {
	form := url.Values{}
	// gateway wants the amount in minor units
	form.Set("amount", strconv.FormatInt(int64(math.Ceil(order.Amount*100)), 10))
	form.Set("currency", order.Currency)
	form.Set("description", order.Description)
	form.Set("source[number]", order.Number)
	form.Set("source[cvc]", order.CVC)
	form.Set("source[exp_month]", strconv.Itoa(order.ExpMonth))
	form.Set("source[exp_year]", strconv.Itoa(order.ExpYear))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/charges", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, &domain.PaymentGatewayError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+g.secret)
	req.Header.Set("Idempotency-Key", order.IdempotencyKey)

	// a timed-out call lands here too: the outcome at the gateway is unknown,
	// so it is reported as a gateway error, never as a decline
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, &domain.PaymentGatewayError{Err: err}
	}
	defer resp.Body.Close()

	var payload chargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &domain.PaymentGatewayError{Err: fmt.Errorf("decode charge response: %w", err)}
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return &domain.ChargeReceipt{
			ID:       payload.ID,
			Payer:    order.UserName,
			Amount:   order.Amount,
			Currency: order.Currency,
			Status:   payload.Status,
		}, nil
	case resp.StatusCode == http.StatusPaymentRequired || (payload.Error != nil && payload.Error.Type == "card_error"):
		declined := &domain.PaymentDeclinedError{Code: "card_declined", Message: "card was declined"}
		if payload.Error != nil {
			declined.Code = payload.Error.Code
			declined.Message = payload.Error.Message
		}
		return nil, declined
	default:
		return nil, &domain.PaymentGatewayError{Err: fmt.Errorf("gateway returned status %d", resp.StatusCode)}
	}
}

var _ Gateway = (*HTTPGateway)(nil)
