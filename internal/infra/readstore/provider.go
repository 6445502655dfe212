package readstore

import (
	"context"
	"log/slog"

	"find-my-space/internal/infra/converter"
	"find-my-space/internal/infra/db"
	"find-my-space/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

type ProviderReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewProviderReadStore(q db.DBTX, logger *slog.Logger) *ProviderReadStore {
	return &ProviderReadStore{db: q, logger: logger}
}

// FindByUserID never exposes the full account number or the government id hash.
func (r *ProviderReadStore) FindByUserID(ctx context.Context, userID string) (*queries.ProviderProfileView, error) {
	b := db.SQL.Select(converter.ProviderColumns...).From("providers").Where(sq.Eq{"user_id": userID})

	var view *queries.ProviderProfileView
	err := db.Get(ctx, r.db, b, func(row pgx.Row) error {
		p, err := converter.ScanProvider(row)
		if err != nil {
			return err
		}
		rec := p.Record()
		view = &queries.ProviderProfileView{
			UserID:            rec.UserID,
			Name:              rec.Name,
			Email:             rec.Email,
			Phone:             rec.Phone,
			GovernmentIDLast4: rec.GovernmentIDLast4,
			IDProofURL:        rec.IDProofURL,
			AgreementSigned:   rec.AgreementSigned,
			Location:          rec.Location,
			Verified:          rec.Verified,
			HasPayoutDetails:  rec.Payout != nil,
			CreatedAt:         rec.CreatedAt,
			UpdatedAt:         rec.UpdatedAt,
		}
		if rec.Payout != nil {
			view.PayoutAccountLast4 = lastN(rec.Payout.AccountNumber, 4)
			view.PayoutIFSC = rec.Payout.IFSC
		}
		return nil
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to find provider profile", err)
	}
	return view, nil
}

func lastN(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
