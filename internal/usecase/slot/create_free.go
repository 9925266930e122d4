package slot

import (
	"context"

	"github.com/wferreiracoriolano/barbearia-api/internal/audit"
	"github.com/wferreiracoriolano/barbearia-api/internal/cache"
	domain "github.com/wferreiracoriolano/barbearia-api/internal/domain/slot"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateFreeSlotInput struct {
	BarberID uint
	Date     string
	Time     string

	ActorID uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateFreeSlot struct {
	repo  domain.Repository
	cache *cache.FreeSlotsCache
	audit *audit.Dispatcher
}

func NewCreateFreeSlot(
	repo domain.Repository,
	cache *cache.FreeSlotsCache,
	audit *audit.Dispatcher,
) *CreateFreeSlot {
	return &CreateFreeSlot{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *CreateFreeSlot) Execute(
	ctx context.Context,
	in CreateFreeSlotInput,
) (*models.Slot, error) {

	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if err := validateTime(in.Time); err != nil {
		return nil, err
	}

	s := &models.Slot{
		BarberID: in.BarberID,
		Date:     in.Date,
		Time:     in.Time,
		Status:   string(domain.InitialStatus()),
	}

	if err := uc.repo.InsertFree(ctx, s); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.BarberID, in.Date)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "slot_created",
		Entity:   "slot",
		EntityID: &s.ID,
	})

	return s, nil
}
