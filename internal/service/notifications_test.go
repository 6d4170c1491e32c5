package service

import (
	"context"
	"testing"

	"github.com/blushrz/salon-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type smsRecorder struct {
	to, body string
	calls    int
}

func (r *smsRecorder) SendSMS(to, body string) error {
	r.to, r.body = to, body
	r.calls++
	return nil
}

func TestNotifications_SendBroadcastsAndStores(t *testing.T) {
	svcs, events := newTestServices(t)
	ctx := context.Background()

	sent, err := svcs.Notifications.Send(ctx, models.SendNotificationRequest{
		Title: "Maintenance", Body: "Sunday 2am",
	})

	require.NoError(t, err)
	assert.Equal(t, models.NotificationSent, sent.Status)
	assert.False(t, sent.SentAt.IsZero())

	ev := events.last(t)
	assert.Equal(t, models.EventSystemAnnouncement, ev.Type)

	stored, err := svcs.Notifications.List(ctx)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestNotifications_SendDeliversSMS(t *testing.T) {
	svcs, _ := newTestServices(t)
	sms := &smsRecorder{}
	svcs.Notifications.sms = sms

	_, err := svcs.Notifications.Send(context.Background(), models.SendNotificationRequest{
		Title: "Reminder", Body: "Your booking is tomorrow", Recipient: "+212600000100",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, sms.calls)
	assert.Equal(t, "+212600000100", sms.to)
	assert.Equal(t, "Reminder: Your booking is tomorrow", sms.body)
}

func TestNotifications_SendWithoutRecipientSkipsSMS(t *testing.T) {
	svcs, _ := newTestServices(t)
	sms := &smsRecorder{}
	svcs.Notifications.sms = sms

	_, err := svcs.Notifications.Send(context.Background(), models.SendNotificationRequest{Title: "Broadcast"})

	require.NoError(t, err)
	assert.Zero(t, sms.calls)
}

func TestNotifications_TitleRequired(t *testing.T) {
	svcs, _ := newTestServices(t)

	_, err := svcs.Notifications.Send(context.Background(), models.SendNotificationRequest{Body: "no title"})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestNotifications_CreateStartsAsDraft(t *testing.T) {
	svcs, _ := newTestServices(t)

	created, err := svcs.Notifications.Create(context.Background(), models.Notification{
		Title: "Draft", Status: models.NotificationSent,
	})

	require.NoError(t, err)
	assert.Equal(t, models.NotificationDraft, created.Status)
}
