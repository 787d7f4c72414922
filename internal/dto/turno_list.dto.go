package dto

import "time"

// TurnoListDTO is the flattened agenda row the dashboard lists.
type TurnoListDTO struct {
	ID          uint      `json:"id"`
	BarberID    uint      `json:"barber_id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
}
