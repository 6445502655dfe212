package repository

import (
	"context"
	"log/slog"

	"find-my-space/internal/domain/provider"
	"find-my-space/internal/infra/converter"
	"find-my-space/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

const providersTable = "providers"

type ProviderRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewProviderRepository(q db.DBTX, logger *slog.Logger) *ProviderRepository {
	return &ProviderRepository{db: q, logger: logger}
}

// Upsert replaces the whole profile but keeps the original created_at.
func (r *ProviderRepository) Upsert(ctx context.Context, p *provider.Profile) error {
	row := converter.ProviderToRow(p)
	b := db.SQL.Insert(providersTable).SetMap(row).Suffix(
		`ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			government_id_hash = EXCLUDED.government_id_hash,
			government_id_last4 = EXCLUDED.government_id_last4,
			id_proof_url = EXCLUDED.id_proof_url,
			agreement_signed = EXCLUDED.agreement_signed,
			signature = EXCLUDED.signature,
			location = EXCLUDED.location,
			verified = EXCLUDED.verified,
			payout_account_name = EXCLUDED.payout_account_name,
			payout_account_number = EXCLUDED.payout_account_number,
			payout_ifsc = EXCLUDED.payout_ifsc,
			updated_at = EXCLUDED.updated_at`)

	if _, err := db.Exec(ctx, r.db, b); err != nil {
		return db.Wrap(r.logger, "failed to upsert provider profile", err)
	}
	return nil
}

func (r *ProviderRepository) FindByUserID(ctx context.Context, userID string) (*provider.Profile, error) {
	b := db.SQL.Select(converter.ProviderColumns...).From(providersTable).Where(sq.Eq{"user_id": userID})

	var out *provider.Profile
	err := db.Get(ctx, r.db, b, func(row pgx.Row) error {
		var err error
		out, err = converter.ScanProvider(row)
		return err
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to find provider profile", err)
	}
	return out, nil
}
