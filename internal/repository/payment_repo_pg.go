package repository

import (
	"context"
	"errors"

	"cinebooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PurchaseStore interface {
	InsertPurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error)
	FindPurchaseByChargeID(ctx context.Context, chargeID string) (*domain.Purchase, error)
}

type PGPurchaseStore struct {
	db *pgxpool.Pool
}

func NewPurchaseStore(db *pgxpool.Pool) PurchaseStore {
	return &PGPurchaseStore{db: db}
}

func (r *PGPurchaseStore) InsertPurchase(ctx context.Context, purchase *domain.Purchase) (*domain.Purchase, error) {
	err := r.db.QueryRow(ctx, `INSERT INTO payments (charge_id, payer, amount, currency, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		purchase.ChargeID, purchase.Payer, purchase.Amount, purchase.Currency, purchase.Description).
		Scan(&purchase.ID, &purchase.CreatedAt)
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (r *PGPurchaseStore) FindPurchaseByChargeID(ctx context.Context, chargeID string) (*domain.Purchase, error) {
	row := r.db.QueryRow(ctx, `SELECT id, charge_id, payer, amount, currency, description, created_at FROM payments WHERE charge_id=$1`, chargeID)
	var p domain.Purchase
	if err := row.Scan(&p.ID, &p.ChargeID, &p.Payer, &p.Amount, &p.Currency, &p.Description, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ PurchaseStore = (*PGPurchaseStore)(nil)
