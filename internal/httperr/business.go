package httperr

import "errors"

// BusinessError é um erro de regra de negócio identificado por código
// estável. Os handlers traduzem o código para o status HTTP adequado.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
