package dto

import "time"

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	Date        string    `json:"date"`
	TimeSlot    string    `json:"time_slot"`
	Status      string    `json:"status"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}
