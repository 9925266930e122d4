package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/wferreiracoriolano/barbearia-api/internal/domain/slot"
	"github.com/wferreiracoriolano/barbearia-api/internal/dto"
	"github.com/wferreiracoriolano/barbearia-api/internal/httperr"
	"github.com/wferreiracoriolano/barbearia-api/internal/models"
)

type SlotGormRepository struct {
	db *gorm.DB
}

func NewSlotGormRepository(db *gorm.DB) *SlotGormRepository {
	return &SlotGormRepository{db: db}
}

// --------------------------------------------------
// Slot (create / block)
// --------------------------------------------------

// InsertFree tenta inserir o slot respeitando o índice único
// (barber_id, date, time). Conflito no índice vira erro de negócio,
// nunca upsert.
func (r *SlotGormRepository) InsertFree(
	ctx context.Context,
	s *models.Slot,
) error {

	res := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(s)

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("slot_already_exists")
	}

	return nil
}

// UpsertBlocked cria o slot como BLOCKED, ou sobrescreve o existente
// limpando cliente/tipo/serviço. Slot BOOKED só é sobrescrito com force.
// Retorna o slot resultante e, quando houve sobrescrita de marcação,
// o id do cliente desalojado.
func (r *SlotGormRepository) UpsertBlocked(
	ctx context.Context,
	barberID uint,
	date string,
	timeOfDay string,
	force bool,
) (*models.Slot, *uint, error) {

	var out *models.Slot
	var displaced *uint

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		s := models.Slot{
			BarberID: barberID,
			Date:     date,
			Time:     timeOfDay,
			Status:   string(domain.StatusBlocked),
		}

		res := tx.
			Omit(clause.Associations).
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(&s)
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected > 0 {
			out = &s
			return nil
		}

		// Trio já existe: sobrescrever.
		var existing models.Slot
		if err := tx.
			Where("barber_id = ? AND date = ? AND time = ?", barberID, date, timeOfDay).
			First(&existing).Error; err != nil {
			return err
		}

		if err := domain.CanBlock(domain.Status(existing.Status), force); err != nil {
			return err
		}

		if existing.Status == string(domain.StatusBooked) {
			displaced = existing.ClientID
		}

		// A leitura acima é só cortesia: o predicado re-checa BOOKED
		// dentro do próprio UPDATE, então uma marcação que commitou
		// depois do First não é sobrescrita sem force.
		upd := tx.Model(&models.Slot{}).
			Where(
				"id = ? AND (status <> ? OR ?)",
				existing.ID, string(domain.StatusBooked), force,
			).
			Updates(map[string]any{
				"status":     string(domain.StatusBlocked),
				"client_id":  nil,
				"type":       nil,
				"service_id": nil,
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return httperr.ErrBusiness("slot_already_booked")
		}

		existing.Status = string(domain.StatusBlocked)
		existing.ClientID = nil
		existing.Type = nil
		existing.ServiceID = nil

		out = &existing
		return nil
	})

	if err != nil {
		return nil, nil, err
	}

	return out, displaced, nil
}

// --------------------------------------------------
// Slot (booking)
// --------------------------------------------------

func (r *SlotGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Slot, error) {

	var s models.Slot
	if err := r.db.WithContext(ctx).First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("slot_not_found")
		}
		return nil, err
	}
	return &s, nil
}

// BookFree executa a transição FREE → BOOKED como um único UPDATE
// condicional. O predicado status='FREE' dentro do próprio write é o que
// resolve a corrida entre dois clientes: só um afeta a linha.
func (r *SlotGormRepository) BookFree(
	ctx context.Context,
	slotID uint,
	clientID uint,
	appointmentType domain.AppointmentType,
	serviceID *uint,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Slot{}).
		Where("id = ? AND status = ?", slotID, string(domain.StatusFree)).
		Updates(map[string]any{
			"status":     string(domain.StatusBooked),
			"client_id":  clientID,
			"type":       string(appointmentType),
			"service_id": serviceID,
		})

	if res.Error != nil {
		return 0, res.Error
	}

	return res.RowsAffected, nil
}

// --------------------------------------------------
// Slot (listing)
// --------------------------------------------------

func (r *SlotGormRepository) ListFree(
	ctx context.Context,
	barberID uint,
	date string,
) ([]models.Slot, error) {

	var slots []models.Slot
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND date = ? AND status = ?",
			barberID, date, string(domain.StatusFree),
		).
		Order("time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *SlotGormRepository) ListDay(
	ctx context.Context,
	barberID uint,
	date string,
) ([]dto.DaySlotDTO, error) {

	var rows []dto.DaySlotDTO
	if err := r.db.WithContext(ctx).
		Table("slots").
		Select(`slots.id, slots.barber_id, slots.date, slots.time, slots.status,
			slots.type, slots.client_id, slots.service_id,
			users.name AS client_name, users.email AS client_email,
			services.name AS service_name`).
		Joins("LEFT JOIN users ON users.id = slots.client_id").
		Joins("LEFT JOIN services ON services.id = slots.service_id").
		Where("slots.barber_id = ? AND slots.date = ?", barberID, date).
		Order("slots.time ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *SlotGormRepository) GetActiveService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		return nil, err
	}
	return &svc, nil
}

// Compile-time check
var _ domain.Repository = (*SlotGormRepository)(nil)
