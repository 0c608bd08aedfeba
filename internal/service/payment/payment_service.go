package payment

import (
	"context"

	"cinebooking/internal/domain"
	"cinebooking/internal/payment"
	"cinebooking/internal/repository"
	"cinebooking/internal/validate"
)

type PurchaseUseCase interface {
	MakePurchase(ctx context.Context, order domain.PaymentOrder) (*domain.ChargeReceipt, error)
	GetPurchaseByID(ctx context.Context, chargeID string) (*domain.Purchase, error)
}

type Validator interface {
	Validate(input any, schema string) error
}

type PurchaseService struct {
	validator Validator
	gateway   payment.Gateway
	purchases repository.PurchaseStore
}

func NewPurchaseService(validator Validator, gateway payment.Gateway, purchases repository.PurchaseStore) *PurchaseService {
	return &PurchaseService{
		validator: validator,
		gateway:   gateway,
		purchases: purchases,
	}
}

// MakePurchase charges the card and records the paid purchase. A record
// failure after a successful charge is reported as charged-but-not-recorded,
// since the money has already moved.
func (s *PurchaseService) MakePurchase(ctx context.Context, order domain.PaymentOrder) (*domain.ChargeReceipt, error) {
	if err := s.validator.Validate(order, validate.SchemaPayment); err != nil {
		return nil, err
	}

	receipt, err := s.gateway.Charge(ctx, order)
	if err != nil {
		return nil, err
	}

	purchase := &domain.Purchase{
		ChargeID:    receipt.ID,
		Payer:       receipt.Payer,
		Amount:      receipt.Amount,
		Currency:    receipt.Currency,
		Description: order.Description,
	}
	if _, err := s.purchases.InsertPurchase(ctx, purchase); err != nil {
		return nil, &domain.ChargedNotRecordedError{
			ChargeID: receipt.ID,
			Step:     "purchase record",
			User:     order.UserName,
			Err:      err,
		}
	}

	return receipt, nil
}

func (s *PurchaseService) GetPurchaseByID(ctx context.Context, chargeID string) (*domain.Purchase, error) {
	return s.purchases.FindPurchaseByChargeID(ctx, chargeID)
}

var _ PurchaseUseCase = (*PurchaseService)(nil)
