package slot

import "github.com/wferreiracoriolano/barbearia-api/internal/httperr"

// ===============================
// Slot Status
// ===============================

type Status string

const (
	StatusFree    Status = "FREE"
	StatusBooked  Status = "BOOKED"
	StatusBlocked Status = "BLOCKED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusFree, StatusBooked, StatusBlocked:
		return true
	}
	return false
}

// ===============================
// Appointment Type
// ===============================

type AppointmentType string

const (
	TypeAvulso     AppointmentType = "AVULSO"
	TypeAssinatura AppointmentType = "ASSINATURA"
)

// DefaultType é assumido quando o cliente não informa o tipo.
const DefaultType = TypeAvulso

func (t AppointmentType) Valid() bool {
	return t == TypeAvulso || t == TypeAssinatura
}

// ===============================
// Validations
// ===============================

// CanBook define se um slot pode sair de FREE para BOOKED.
func CanBook(current Status) error {
	if current != StatusFree {
		return httperr.ErrBusiness("slot_not_available")
	}
	return nil
}

// CanBlock define se um slot existente pode ser sobrescrito para BLOCKED.
// Sobrescrever um slot BOOKED descarta a marcação do cliente, então só é
// permitido com force explícito.
func CanBlock(current Status, force bool) error {
	if current == StatusBooked && !force {
		return httperr.ErrBusiness("slot_already_booked")
	}
	return nil
}

// InitialStatus valida o status inicial de criação.
func InitialStatus() Status {
	return StatusFree
}
