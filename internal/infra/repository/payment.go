package repository

import (
	"context"
	"log/slog"

	"find-my-space/internal/domain/payment"
	"find-my-space/internal/infra"
	"find-my-space/internal/infra/converter"
	"find-my-space/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentsTable = "payments"

type PaymentRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewPaymentRepository(q db.DBTX, logger *slog.Logger) *PaymentRepository {
	return &PaymentRepository{db: q, logger: logger}
}

func (r *PaymentRepository) Create(ctx context.Context, p *payment.Payment) error {
	_, err := db.Exec(ctx, r.db, db.SQL.Insert(paymentsTable).SetMap(converter.PaymentToRow(p)))
	if err != nil {
		return db.Wrap(r.logger, "failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *payment.Payment) error {
	row := converter.PaymentToRow(p)
	delete(row, "id")
	delete(row, "created_at")

	n, err := db.Exec(ctx, r.db, db.SQL.Update(paymentsTable).SetMap(row).Where(sq.Eq{"id": p.ID()}))
	if err != nil {
		return db.Wrap(r.logger, "failed to update payment", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "payment not found")
	}
	return nil
}

func (r *PaymentRepository) FindChargeByOrderID(ctx context.Context, orderID string) (*payment.Payment, error) {
	return r.findOne(ctx, sq.Eq{"kind": string(payment.KindCharge), "order_id": orderID})
}

func (r *PaymentRepository) FindPayoutByBookingID(ctx context.Context, bookingID uuid.UUID) (*payment.Payment, error) {
	return r.findOne(ctx, sq.Eq{"kind": string(payment.KindPayout), "booking_id": bookingID})
}

func (r *PaymentRepository) findOne(ctx context.Context, where sq.Eq) (*payment.Payment, error) {
	b := db.SQL.Select(converter.PaymentColumns...).From(paymentsTable).Where(where).Suffix("FOR UPDATE")

	var out *payment.Payment
	err := db.Get(ctx, r.db, b, func(row pgx.Row) error {
		var err error
		out, err = converter.ScanPayment(row)
		return err
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to find payment", err)
	}
	return out, nil
}
