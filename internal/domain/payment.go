package domain

import (
	"fmt"
	"strings"
	"time"
)

// PaymentOrder is built per booking attempt and never persisted as-is.
type PaymentOrder struct {
	UserName       string  `json:"userName" validate:"required"`
	Currency       string  `json:"currency" validate:"required,len=3"`
	Number         string  `json:"number" validate:"required,credit_card"`
	CVC            string  `json:"cvc" validate:"required,len=3"`
	ExpMonth       int     `json:"exp_month" validate:"required,min=1,max=12"`
	ExpYear        int     `json:"exp_year" validate:"required,min=2000"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Description    string  `json:"description" validate:"required"`
	IdempotencyKey string  `json:"idempotency_key" validate:"required"`
}

// NewPaymentOrder assembles the charge request from validated inputs. The
// amount is taken verbatim from the booking; pricing is the caller's problem.
func NewPaymentOrder(user User, booking BookingRequest, currency, idempotencyKey string) PaymentOrder {
	description := fmt.Sprintf("Ticket(s) for movie %s, with seat(s) %s at time %s",
		booking.Movie.Title, strings.Join(booking.Seats, ","), booking.Schedule)
	return PaymentOrder{
		UserName:       user.FullName(),
		Currency:       currency,
		Number:         user.CreditCard.Number,
		CVC:            user.CreditCard.CVC,
		ExpMonth:       user.CreditCard.ExpMonth,
		ExpYear:        user.CreditCard.ExpYear,
		Amount:         booking.TotalAmount,
		Description:    description,
		IdempotencyKey: idempotencyKey,
	}
}

// ChargeReceipt is the gateway's proof of capture. Immutable once issued; its
// id is the only cross-reference key between payment and booking records.
type ChargeReceipt struct {
	ID       string  `json:"id"`
	Payer    string  `json:"payer"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

// Purchase is the stored projection of a successful charge.
type Purchase struct {
	ID          int64
	ChargeID    string
	Payer       string
	Amount      float64
	Currency    string
	Description string
	CreatedAt   time.Time
}
