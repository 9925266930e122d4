package slot

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wferreiracoriolano/barbearia-api/internal/httperr"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusFree.Valid())
	assert.True(t, StatusBooked.Valid())
	assert.True(t, StatusBlocked.Valid())
	assert.False(t, Status("PENDING").Valid())
	assert.False(t, Status("").Valid())
}

func TestAppointmentTypeValid(t *testing.T) {
	assert.True(t, TypeAvulso.Valid())
	assert.True(t, TypeAssinatura.Valid())
	assert.False(t, AppointmentType("MENSAL").Valid())
	assert.Equal(t, TypeAvulso, DefaultType)
}

func TestCanBook(t *testing.T) {
	assert.NoError(t, CanBook(StatusFree))

	err := CanBook(StatusBooked)
	assert.True(t, httperr.IsBusiness(err, "slot_not_available"))

	err = CanBook(StatusBlocked)
	assert.True(t, httperr.IsBusiness(err, "slot_not_available"))
}

func TestCanBlock(t *testing.T) {
	// FREE pode ser bloqueado sempre.
	assert.NoError(t, CanBlock(StatusFree, false))
	assert.NoError(t, CanBlock(StatusFree, true))

	// BLOCKED → BLOCKED é idempotente.
	assert.NoError(t, CanBlock(StatusBlocked, false))

	// BOOKED exige force explícito.
	err := CanBlock(StatusBooked, false)
	assert.True(t, httperr.IsBusiness(err, "slot_already_booked"))
	assert.NoError(t, CanBlock(StatusBooked, true))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusFree, InitialStatus())
}
