package slot

import (
	"context"
	"strings"

	"github.com/wferreiracoriolano/barbearia-api/internal/audit"
	"github.com/wferreiracoriolano/barbearia-api/internal/cache"
	domain "github.com/wferreiracoriolano/barbearia-api/internal/domain/slot"
	"github.com/wferreiracoriolano/barbearia-api/internal/httperr"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookSlotInput struct {
	SlotID   uint
	ClientID uint

	// Vazio assume AVULSO, como no fluxo original do balcão.
	Type      string
	ServiceID *uint
}

// ======================================================
// USE CASE
// ======================================================

type BookSlot struct {
	repo  domain.Repository
	cache *cache.FreeSlotsCache
	audit *audit.Dispatcher
}

func NewBookSlot(
	repo domain.Repository,
	cache *cache.FreeSlotsCache,
	audit *audit.Dispatcher,
) *BookSlot {
	return &BookSlot{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *BookSlot) Execute(
	ctx context.Context,
	in BookSlotInput,
) (*models.Slot, error) {

	// --------------------------------------------------
	// 1. Tipo de atendimento
	// --------------------------------------------------
	apType := domain.AppointmentType(strings.ToUpper(strings.TrimSpace(in.Type)))
	if apType == "" {
		apType = domain.DefaultType
	}
	if !apType.Valid() {
		return nil, httperr.ErrBusiness("invalid_type")
	}

	// --------------------------------------------------
	// 2. Serviço (opcional, mas precisa estar ativo)
	// --------------------------------------------------
	if in.ServiceID != nil {
		if _, err := uc.repo.GetActiveService(ctx, *in.ServiceID); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 3. Slot existe?
	// --------------------------------------------------
	s, err := uc.repo.GetByID(ctx, in.SlotID)
	if err != nil {
		return nil, err
	}

	if err := domain.CanBook(domain.Status(s.Status)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 4. FREE → BOOKED atômico. A leitura acima é só cortesia:
	//    quem decide a corrida é o RowsAffected do write condicional.
	// --------------------------------------------------
	rows, err := uc.repo.BookFree(ctx, in.SlotID, in.ClientID, apType, in.ServiceID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Outro pedido venceu entre a leitura e o write.
		return nil, httperr.ErrBusiness("slot_not_available")
	}

	uc.cache.Invalidate(ctx, s.BarberID, s.Date)

	typeStr := string(apType)
	s.Status = string(domain.StatusBooked)
	s.ClientID = &in.ClientID
	s.Type = &typeStr
	s.ServiceID = in.ServiceID

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ClientID,
		Action:   "slot_booked",
		Entity:   "slot",
		EntityID: &s.ID,
		Metadata: map[string]any{"type": typeStr},
	})

	return s, nil
}
