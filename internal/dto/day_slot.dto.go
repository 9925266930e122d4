package dto

type DaySlotDTO struct {
	ID       uint   `json:"id"`
	BarberID uint   `json:"barber_id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`

	Type      *string `json:"type"`
	ClientID  *uint   `json:"client_id"`
	ServiceID *uint   `json:"service_id"`

	ClientName  *string `json:"client_name"`
	ClientEmail *string `json:"client_email"`
	ServiceName *string `json:"service_name"`
}
