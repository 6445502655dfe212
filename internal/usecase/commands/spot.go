package commands

import (
	"context"

	"find-my-space/internal/domain/availability"
	"find-my-space/internal/domain/booking"
	"find-my-space/internal/domain/spot"
	"find-my-space/internal/domain/user"
	reqdto "find-my-space/internal/handler/dto/request"
	"find-my-space/internal/usecase/shared"

	"github.com/google/uuid"
)

type SpotCommands interface {
	CreateSpot(ctx context.Context, actor *user.Identity, req reqdto.CreateSpotRequest) (uuid.UUID, error)
	UpdateSpot(ctx context.Context, actor *user.Identity, id uuid.UUID, req reqdto.UpdateSpotRequest) error
	DeleteSpot(ctx context.Context, actor *user.Identity, id uuid.UUID) error
}

type spotCommandsImpl struct {
	uow       shared.UnitOfWork
	services  *booking.Services
	publisher shared.EventPublisher
}

func NewSpotCommands(uow shared.UnitOfWork, services *booking.Services, publisher shared.EventPublisher) SpotCommands {
	return &spotCommandsImpl{uow: uow, services: services, publisher: publisher}
}

func (uc *spotCommandsImpl) CreateSpot(ctx context.Context, actor *user.Identity, req reqdto.CreateSpotRequest) (uuid.UUID, error) {
	if err := requireProvider(actor); err != nil {
		return uuid.Nil, err
	}
	details, err := req.ToDetails()
	if err != nil {
		return uuid.Nil, err
	}
	s, err := spot.NewProviderSpot(actor.ID(), actor.DisplayName(), details, uc.services.Clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Spots().Create(ctx, s)
	})
	if err != nil {
		return uuid.Nil, err
	}
	uc.publisher.Publish(ctx, spotEvent(shared.EventSpotCreated, s, s.CreatedAt()))
	return s.ID(), nil
}

func (uc *spotCommandsImpl) UpdateSpot(ctx context.Context, actor *user.Identity, id uuid.UUID, req reqdto.UpdateSpotRequest) error {
	if err := requireProvider(actor); err != nil {
		return err
	}
	now := uc.services.Clock.Now()

	var updated *spot.Spot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := loadOwnedSpotForUpdate(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		details, err := req.Apply(s.Details())
		if err != nil {
			return err
		}
		if err := s.Revise(details, now); err != nil {
			return err
		}
		updated = s
		return tx.Spots().Update(ctx, s)
	})
	if err != nil {
		return err
	}
	uc.publisher.Publish(ctx, spotEvent(shared.EventSpotUpdated, updated, now))
	return nil
}

// DeleteSpot refuses while bookings for today or later still occupy the spot.
func (uc *spotCommandsImpl) DeleteSpot(ctx context.Context, actor *user.Identity, id uuid.UUID) error {
	if err := requireProvider(actor); err != nil {
		return err
	}
	now := uc.services.Clock.Now()
	today := booking.DateOf(now.In(uc.services.Location))

	var deleted *spot.Spot
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := loadOwnedSpotForUpdate(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		inUse, err := tx.Bookings().ExistsOccupyingFrom(ctx, s.ID(), today, availability.OccupyingStatuses)
		if err != nil {
			return err
		}
		if inUse {
			return ErrSpotInUse
		}
		deleted = s
		return tx.Spots().Delete(ctx, s.ID())
	})
	if err != nil {
		return err
	}
	uc.publisher.Publish(ctx, spotEvent(shared.EventSpotDeleted, deleted, now))
	return nil
}

func loadOwnedSpotForUpdate(ctx context.Context, tx shared.Tx, actor *user.Identity, id uuid.UUID) (*spot.Spot, error) {
	s, err := tx.Spots().FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrSpotNotFound)
	}
	if err := s.EnsureOwnedBy(actor.ID()); err != nil {
		return nil, ErrPermissionDenied
	}
	return s, nil
}
