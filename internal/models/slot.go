package models

import "time"

// Slot é uma unidade de agenda: um único (barbeiro, data, hora).
// O índice único composto garante que o trio nunca se repete.
type Slot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"not null;uniqueIndex:idx_slot_barber_date_time" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	Date string `gorm:"size:10;not null;uniqueIndex:idx_slot_barber_date_time" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;not null;uniqueIndex:idx_slot_barber_date_time" json:"time"`  // HH:MM

	Status string `gorm:"size:10;not null;default:'FREE'" json:"status"` // FREE | BOOKED | BLOCKED

	ClientID  *uint   `json:"client_id"`
	Type      *string `gorm:"size:12" json:"type"` // AVULSO | ASSINATURA
	ServiceID *uint   `json:"service_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
