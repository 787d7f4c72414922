package notification

import (
	"context"

	"go.uber.org/zap"
)

type messageKind int

const (
	kindConfirmation messageKind = iota
	kindReminder
)

type job struct {
	kind messageKind
	msg  Message
}

// Dispatcher delivers messages fire-and-forget: the booking response never
// waits on the provider and a delivery failure is logged, not retried and
// not surfaced. A full queue drops the message.
type Dispatcher struct {
	notifier Notifier
	log      *zap.Logger
	queue    chan job
}

func NewDispatcher(notifier Notifier, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		log:      log,
		queue:    make(chan job, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for j := range d.queue {
		var (
			ref string
			err error
		)

		switch j.kind {
		case kindConfirmation:
			ref, err = d.notifier.SendAppointmentConfirmation(context.Background(), j.msg)
		case kindReminder:
			ref, err = d.notifier.SendAppointmentReminder(context.Background(), j.msg)
		}

		if err != nil {
			d.log.Warn("notification delivery failed",
				zap.String("client", j.msg.ClientName),
				zap.Error(err),
			)
			continue
		}

		d.log.Info("notification delivered",
			zap.String("delivery_ref", ref),
		)
	}
}

func (d *Dispatcher) DispatchConfirmation(m Message) {
	d.dispatch(job{kind: kindConfirmation, msg: m})
}

func (d *Dispatcher) DispatchReminder(m Message) {
	d.dispatch(job{kind: kindReminder, msg: m})
}

func (d *Dispatcher) dispatch(j job) {
	select {
	case d.queue <- j:
	default:
		d.log.Warn("notification queue full, dropping message",
			zap.String("client", j.msg.ClientName),
		)
	}
}
