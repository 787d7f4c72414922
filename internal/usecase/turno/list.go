package turno

import (
	"context"
	"time"

	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/dto"
)

type ListTurnosInput struct {
	BarbershopID uint

	BarberID *uint
	From     *time.Time
	To       *time.Time
}

type ListTurnos struct {
	repos domain.Repositories
}

func NewListTurnos(repos domain.Repositories) *ListTurnos {
	return &ListTurnos{repos: repos}
}

// Execute is a plain filtered read, start ascending; no conflict logic.
func (uc *ListTurnos) Execute(
	ctx context.Context,
	in ListTurnosInput,
) ([]dto.TurnoListDTO, error) {

	turnos, err := uc.repos.Appointments.List(ctx, in.BarbershopID, domain.AppointmentFilter{
		BarberID: in.BarberID,
		From:     in.From,
		To:       in.To,
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.TurnoListDTO, 0, len(turnos))
	for _, ap := range turnos {
		out = append(out, dto.TurnoListDTO{
			ID:          ap.ID,
			BarberID:    ap.BarberID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			ServiceName: ap.Service.Name,
		})
	}

	return out, nil
}
