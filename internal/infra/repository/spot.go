package repository

import (
	"context"
	"log/slog"

	"find-my-space/internal/domain/spot"
	"find-my-space/internal/infra"
	"find-my-space/internal/infra/converter"
	"find-my-space/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const spotsTable = "parking_spots"

type SpotRepository struct {
	db     db.DBTX
	logger *slog.Logger
}

func NewSpotRepository(q db.DBTX, logger *slog.Logger) *SpotRepository {
	return &SpotRepository{db: q, logger: logger}
}

func (r *SpotRepository) Create(ctx context.Context, s *spot.Spot) error {
	_, err := db.Exec(ctx, r.db, db.SQL.Insert(spotsTable).SetMap(converter.SpotToRow(s)))
	if err != nil {
		return db.Wrap(r.logger, "failed to create spot", err)
	}
	return nil
}

func (r *SpotRepository) Update(ctx context.Context, s *spot.Spot) error {
	row := converter.SpotToRow(s)
	delete(row, "id")
	delete(row, "created_at")

	n, err := db.Exec(ctx, r.db, db.SQL.Update(spotsTable).SetMap(row).Where(sq.Eq{"id": s.ID()}))
	if err != nil {
		return db.Wrap(r.logger, "failed to update spot", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "spot not found")
	}
	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := db.Exec(ctx, r.db, db.SQL.Delete(spotsTable).Where(sq.Eq{"id": id}))
	if err != nil {
		return db.Wrap(r.logger, "failed to delete spot", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "spot not found")
	}
	return nil
}

func (r *SpotRepository) FindByID(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	return r.find(ctx, id, "")
}

func (r *SpotRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*spot.Spot, error) {
	return r.find(ctx, id, "FOR UPDATE")
}

func (r *SpotRepository) find(ctx context.Context, id uuid.UUID, suffix string) (*spot.Spot, error) {
	b := db.SQL.Select(converter.SpotColumns...).From(spotsTable).Where(sq.Eq{"id": id})
	if suffix != "" {
		b = b.Suffix(suffix)
	}

	var s *spot.Spot
	err := db.Get(ctx, r.db, b, func(row pgx.Row) error {
		var err error
		s, err = converter.ScanSpot(row)
		return err
	})
	if err != nil {
		return nil, db.Wrap(r.logger, "failed to find spot", err)
	}
	return s, nil
}

// ReserveSlot only decrements while a slot is free, so concurrent callers cannot oversell.
func (r *SpotRepository) ReserveSlot(ctx context.Context, id uuid.UUID) error {
	n, err := db.Exec(ctx, r.db, db.SQL.Update(spotsTable).
		Set("available", sq.Expr("available - 1")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Where("available > 0"))
	if err != nil {
		return db.Wrap(r.logger, "failed to reserve slot", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindConflict, "no free slot")
	}
	return nil
}

func (r *SpotRepository) ReleaseSlot(ctx context.Context, id uuid.UUID) error {
	n, err := db.Exec(ctx, r.db, db.SQL.Update(spotsTable).
		Set("available", sq.Expr("LEAST(available + 1, total_slots)")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
	if err != nil {
		return db.Wrap(r.logger, "failed to release slot", err)
	}
	if n == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "spot not found")
	}
	return nil
}
