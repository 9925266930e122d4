package slot

import (
	"time"

	"github.com/wferreiracoriolano/barbearia-api/internal/httperr"
)

// Datas e horas circulam como string crua (YYYY-MM-DD / HH:MM), igual ao
// schema; aqui só validamos a forma antes de tocar o banco.

func validateDate(date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	return nil
}

func validateTime(timeOfDay string) error {
	if _, err := time.Parse("15:04", timeOfDay); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}
