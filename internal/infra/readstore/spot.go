package readstore

import (
	"context"
	"log/slog"

	"find-my-space/internal/domain/spot"
	"find-my-space/internal/infra/converter"
	"find-my-space/internal/infra/db"
	"find-my-space/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SpotReadStore struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSpotReadStore(q db.DBTX, logger *slog.Logger) *SpotReadStore {
	return &SpotReadStore{db: q, logger: logger}
}

func (r *SpotReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SpotView, error) {
	b := db.SQL.Select(converter.SpotColumns...).From("parking_spots").Where(sq.Eq{"id": id})

	var view *queries.SpotView
	err := db.Get(ctx, r.db, b, func(row pgx.Row) error {
		s, err := converter.ScanSpot(row)
		if err != nil {
			return err
		}
		view = toSpotView(s)
		return nil
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to find spot", err)
	}
	return view, nil
}

func (r *SpotReadStore) List(ctx context.Context, filter queries.SpotFilter) ([]*queries.SpotView, error) {
	b := db.SQL.Select(converter.SpotColumns...).From("parking_spots").OrderBy("created_at DESC", "id DESC")
	if filter.Event != nil {
		b = b.Where(sq.Eq{"is_event": *filter.Event})
	}
	if filter.ProviderSpots != nil {
		b = b.Where(sq.Eq{"is_provider_spot": *filter.ProviderSpots})
	}
	if filter.ProviderID != nil {
		b = b.Where(sq.Eq{"provider_id": *filter.ProviderID})
	}

	views, err := db.Select(ctx, r.db, b, func(row pgx.Row) (*queries.SpotView, error) {
		s, err := converter.ScanSpot(row)
		if err != nil {
			return nil, err
		}
		return toSpotView(s), nil
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to list spots", err)
	}
	return views, nil
}

func toSpotView(s *spot.Spot) *queries.SpotView {
	d := s.Details()
	v := &queries.SpotView{
		ID:                    s.ID(),
		ProviderID:            s.ProviderID(),
		ProviderName:          s.ProviderName(),
		Location:              d.Location,
		Address:               d.Address,
		Details:               d.Description,
		TotalSlots:            d.TotalSlots,
		Available:             s.Available(),
		AvailableToday:        s.Available(),
		PricePerHourPaise:     d.PricePerHour.Paise(),
		IsEvent:               d.IsEvent,
		IsProviderSpot:        s.IsProviderSpot(),
		AdvancePaymentAllowed: d.AdvancePaymentAllowed,
		CreatedAt:             s.CreatedAt(),
		UpdatedAt:             s.UpdatedAt(),
	}
	if d.Geo != nil {
		lat, lng := d.Geo.Latitude, d.Geo.Longitude
		v.Latitude, v.Longitude = &lat, &lng
	}
	return v
}
