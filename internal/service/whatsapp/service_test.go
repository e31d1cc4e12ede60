package whatsapp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovelyhome/carehome/internal/config"
	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/service/commands"
	client "github.com/lovelyhome/carehome/pkg/clients/whatsapp"
)

const coordinator = "919876543210"

type fakeClient struct {
	requests []client.SendTextMessageRequest
	err      error
}

func (f *fakeClient) SendTextMessage(_ context.Context, req client.SendTextMessageRequest) (*client.SendTextMessageResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	resp := &client.SendTextMessageResponse{}
	resp.Messages = append(resp.Messages, struct {
		ID string `json:"id"`
	}{ID: "wamid.1"})
	return resp, nil
}

type stubDispatcher struct {
	reply string
	err   error
	got   []models.Command
}

func (d *stubDispatcher) HandleCommand(_ context.Context, cmd models.Command, _ string) (string, error) {
	d.got = append(d.got, cmd)
	return d.reply, d.err
}

func newTestService(fc *fakeClient, d *stubDispatcher) *MetaWhatsAppService {
	cfg := config.WhatsAppConfig{VerifyToken: "s3cret", CoordinatorID: coordinator}
	return NewMetaWhatsAppService(cfg, fc, d, nil)
}

func textPayload(from string, bodies ...string) models.WebhookPayload {
	msgs := make([]models.InboundMessage, 0, len(bodies))
	for i, b := range bodies {
		msgs = append(msgs, models.InboundMessage{
			From: from,
			ID:   string(rune('a' + i)),
			Type: "text",
			Text: &models.TextContent{Body: b},
		})
	}
	return models.WebhookPayload{
		Object: "whatsapp_business_account",
		Entry: []models.WebhookEntry{{
			Changes: []models.WebhookChange{{Field: "messages", Value: models.WebhookValue{Messages: msgs}}},
		}},
	}
}

func TestVerifyWebhookToken(t *testing.T) {
	svc := newTestService(&fakeClient{}, &stubDispatcher{})

	challenge, err := svc.VerifyWebhookToken("subscribe", "s3cret", "12345")
	require.NoError(t, err)
	assert.Equal(t, "12345", challenge)

	for _, tc := range []struct{ mode, token string }{
		{"", "s3cret"},
		{"subscribe", ""},
		{"unsubscribe", "s3cret"},
		{"subscribe", "wrong"},
	} {
		_, err := svc.VerifyWebhookToken(tc.mode, tc.token, "1")
		assert.ErrorIs(t, err, ErrVerificationFailed)
	}
}

func TestHandleWebhook_RepliesToCoordinator(t *testing.T) {
	fc := &fakeClient{}
	d := &stubDispatcher{reply: "Occupancy across 2 homes: 60/75"}
	svc := newTestService(fc, d)

	require.NoError(t, svc.HandleWebhook(context.Background(), textPayload(coordinator, "/occupancy")))

	require.Len(t, d.got, 1)
	assert.Equal(t, models.CommandOccupancy, d.got[0].Type)
	require.Len(t, fc.requests, 1)
	assert.Equal(t, coordinator, fc.requests[0].To)
	assert.Equal(t, "Occupancy across 2 homes: 60/75", fc.requests[0].Body)
}

func TestHandleWebhook_IgnoresStrangersAndReceipts(t *testing.T) {
	fc := &fakeClient{}
	d := &stubDispatcher{reply: "x"}
	svc := newTestService(fc, d)

	require.NoError(t, svc.HandleWebhook(context.Background(), textPayload("15550001111", "/occupancy")))

	receipts := models.WebhookPayload{Entry: []models.WebhookEntry{{
		Changes: []models.WebhookChange{{Value: models.WebhookValue{
			Statuses: []models.MessageStatus{{ID: "wamid.1", Status: "read"}},
		}}},
	}}}
	require.NoError(t, svc.HandleWebhook(context.Background(), receipts))

	assert.Empty(t, d.got)
	assert.Empty(t, fc.requests)
}

func TestHandleWebhook_CommandErrorsBecomeReplies(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		prefix string
	}{
		{"unknown", commands.ErrUnsupportedCommand, "Unknown command."},
		{"bad args", commands.ErrInvalidArguments, "Could not run checkups"},
		{"internal", errors.New("boom"), "Sorry, that command failed."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fc := &fakeClient{}
			svc := newTestService(fc, &stubDispatcher{err: tc.err})

			require.NoError(t, svc.HandleWebhook(context.Background(), textPayload(coordinator, "/checkups")))
			require.Len(t, fc.requests, 1)
			assert.Contains(t, fc.requests[0].Body, tc.prefix)
		})
	}
}

func TestHandleWebhook_ButtonReplyAndSendFailure(t *testing.T) {
	fc := &fakeClient{err: errors.New("unreachable")}
	d := &stubDispatcher{reply: commands.HelpText}
	svc := newTestService(fc, d)

	payload := models.WebhookPayload{Entry: []models.WebhookEntry{{
		Changes: []models.WebhookChange{{Value: models.WebhookValue{Messages: []models.InboundMessage{
			{From: coordinator, ID: "a", Type: "interactive", Interactive: &models.InteractiveContent{
				Type:        "button_reply",
				ButtonReply: &models.ReplyItem{ID: "help", Title: "Help"},
			}},
			{From: coordinator, ID: "b", Type: "text", Text: &models.TextContent{Body: "/occupancy"}},
		}}}},
	}}}

	err := svc.HandleWebhook(context.Background(), payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unreachable")
	assert.Len(t, fc.requests, 2, "a failed reply does not stop the batch")
	assert.Equal(t, models.CommandHelp, d.got[0].Type)
}

func TestSendOutbound(t *testing.T) {
	fc := &fakeClient{}
	svc := newTestService(fc, &stubDispatcher{})

	require.NoError(t, svc.SendOutbound(context.Background(), models.OutboundMessageRequest{Message: " Van leaves at 9 "}))
	require.Len(t, fc.requests, 1)
	assert.Equal(t, coordinator, fc.requests[0].To)
	assert.Equal(t, "Van leaves at 9", fc.requests[0].Body)

	assert.ErrorIs(t, svc.SendOutbound(context.Background(), models.OutboundMessageRequest{Message: " "}), ErrEmptyMessage)
}
