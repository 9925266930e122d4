package slot

import (
	"context"

	"github.com/wferreiracoriolano/barbearia-api/internal/dto"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
)

type Repository interface {
	// -------- Slot (create / block) --------
	InsertFree(
		ctx context.Context,
		s *models.Slot,
	) error

	UpsertBlocked(
		ctx context.Context,
		barberID uint,
		date string,
		timeOfDay string,
		force bool,
	) (*models.Slot, *uint, error)

	// -------- Slot (booking) --------
	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Slot, error)

	BookFree(
		ctx context.Context,
		slotID uint,
		clientID uint,
		appointmentType AppointmentType,
		serviceID *uint,
	) (int64, error)

	// -------- Slot (listing) --------
	ListFree(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]models.Slot, error)

	ListDay(
		ctx context.Context,
		barberID uint,
		date string,
	) ([]dto.DaySlotDTO, error)

	// -------- Catalog --------
	GetActiveService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)
}
