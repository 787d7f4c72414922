package pos

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/TurnosCloud/turnos-api/internal/domain/turno"
	"github.com/TurnosCloud/turnos-api/internal/models"
)

// Recorder creates the cash-flow row the point of sale expects when a
// turno completes. It runs inside the same transaction as the state change.
type Recorder struct {
	log *zap.Logger
}

func NewRecorder(log *zap.Logger) *Recorder {
	return &Recorder{log: log}
}

// RecordCompletion snapshots the service price into a cash transaction. A
// missing service (deleted from the catalog after booking) is logged and
// skipped rather than blocking the completion.
func (rec *Recorder) RecordCompletion(
	ctx context.Context,
	r domain.Repositories,
	ap *models.Appointment,
) error {

	svc, err := r.Services.GetService(ctx, ap.BarbershopID, ap.ServiceID)
	if err != nil {
		return err
	}
	if svc == nil {
		rec.log.Warn("completed turno has no catalog service, skipping cash record",
			zap.Uint("appointment_id", ap.ID),
			zap.Uint("service_id", ap.ServiceID),
		)
		return nil
	}

	return r.Cash.Create(ctx, &models.CashTransaction{
		BarbershopID:  ap.BarbershopID,
		AppointmentID: ap.ID,
		Amount:        svc.Price,
	})
}
