package slot

import (
	"context"

	"github.com/wferreiracoriolano/barbearia-api/internal/cache"
	domain "github.com/wferreiracoriolano/barbearia-api/internal/domain/slot"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
)

type ListFreeSlots struct {
	repo  domain.Repository
	cache *cache.FreeSlotsCache
}

func NewListFreeSlots(
	repo domain.Repository,
	cache *cache.FreeSlotsCache,
) *ListFreeSlots {
	return &ListFreeSlots{
		repo:  repo,
		cache: cache,
	}
}

func (uc *ListFreeSlots) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Slot, error) {

	if err := validateDate(date); err != nil {
		return nil, err
	}

	if slots, ok := uc.cache.Get(ctx, barberID, date); ok {
		return slots, nil
	}

	slots, err := uc.repo.ListFree(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, barberID, date, slots)

	return slots, nil
}
