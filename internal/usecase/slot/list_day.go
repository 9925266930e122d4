package slot

import (
	"context"

	domain "github.com/wferreiracoriolano/barbearia-api/internal/domain/slot"
	"github.com/wferreiracoriolano/barbearia-api/internal/dto"
)

type ListDaySlots struct {
	repo domain.Repository
}

func NewListDaySlots(
	repo domain.Repository,
) *ListDaySlots {
	return &ListDaySlots{
		repo: repo,
	}
}

// Execute devolve a agenda completa do dia (qualquer status), com os
// dados do cliente e do serviço já juntados para exibição.
func (uc *ListDaySlots) Execute(
	ctx context.Context,
	barberID uint,
	date string,
) ([]dto.DaySlotDTO, error) {

	if err := validateDate(date); err != nil {
		return nil, err
	}

	return uc.repo.ListDay(ctx, barberID, date)
}
