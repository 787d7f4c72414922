package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/TurnosCloud/turnos-api/internal/timeutil"
)

// TwilioNotifier sends confirmations and reminders as SMS through the
// Twilio API. Times in the message body are rendered in the configured
// local offset.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
	clock  *timeutil.Clock
}

func NewTwilioNotifier(accountSid, authToken, from string, clock *timeutil.Clock) *TwilioNotifier {
	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from:  from,
		clock: clock,
	}
}

func (t *TwilioNotifier) SendAppointmentConfirmation(
	_ context.Context,
	m Message,
) (string, error) {

	body := fmt.Sprintf(
		"Hola %s! Tu turno de %s con %s quedó confirmado para el %s.",
		m.ClientName,
		m.ServiceName,
		m.StaffName,
		t.clock.ToLocal(m.Start).Format("02/01 15:04"),
	)

	return t.send(m.ClientPhone, body)
}

func (t *TwilioNotifier) SendAppointmentReminder(
	_ context.Context,
	m Message,
) (string, error) {

	body := fmt.Sprintf(
		"Hola %s! Te recordamos tu turno de %s con %s mañana a las %s.",
		m.ClientName,
		m.ServiceName,
		m.StaffName,
		t.clock.ToLocal(m.Start).Format("15:04"),
	)

	return t.send(m.ClientPhone, body)
}

func (t *TwilioNotifier) send(to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(body)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}

	if resp.Sid != nil {
		return *resp.Sid, nil
	}
	return uuid.NewString(), nil
}

var _ Notifier = (*TwilioNotifier)(nil)
