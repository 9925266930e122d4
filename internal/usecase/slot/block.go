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

type BlockSlotInput struct {
	BarberID uint
	Date     string
	Time     string

	// Force autoriza sobrescrever um slot já BOOKED, descartando a
	// marcação. Sem force a sobrescrita é recusada com conflito.
	Force bool

	ActorID uint
}

// ======================================================
// USE CASE
// ======================================================

type BlockSlot struct {
	repo  domain.Repository
	cache *cache.FreeSlotsCache
	audit *audit.Dispatcher
}

func NewBlockSlot(
	repo domain.Repository,
	cache *cache.FreeSlotsCache,
	audit *audit.Dispatcher,
) *BlockSlot {
	return &BlockSlot{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *BlockSlot) Execute(
	ctx context.Context,
	in BlockSlotInput,
) (*models.Slot, error) {

	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if err := validateTime(in.Time); err != nil {
		return nil, err
	}

	s, displaced, err := uc.repo.UpsertBlocked(
		ctx,
		in.BarberID,
		in.Date,
		in.Time,
		in.Force,
	)
	if err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, in.BarberID, in.Date)

	ev := audit.Event{
		UserID:   &in.ActorID,
		Action:   "slot_blocked",
		Entity:   "slot",
		EntityID: &s.ID,
	}
	if displaced != nil {
		// Sobrescrita forçada: registra quem perdeu a marcação.
		ev.Action = "slot_blocked_over_booking"
		ev.Metadata = map[string]any{"displaced_client_id": *displaced}
	}
	uc.audit.Dispatch(ev)

	return s, nil
}
