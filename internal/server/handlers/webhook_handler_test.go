package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lovelyhome/carehome/internal/domain/models"
	service "github.com/lovelyhome/carehome/internal/service/whatsapp"
)

type stubMessaging struct {
	payloads []models.WebhookPayload
	sent     []models.OutboundMessageRequest
	err      error
}

func (s *stubMessaging) VerifyWebhookToken(mode, token, challenge string) (string, error) {
	if mode == "subscribe" && token == "s3cret" {
		return challenge, nil
	}
	return "", service.ErrVerificationFailed
}

func (s *stubMessaging) HandleWebhook(_ context.Context, payload models.WebhookPayload) error {
	s.payloads = append(s.payloads, payload)
	return s.err
}

func (s *stubMessaging) SendOutbound(_ context.Context, req models.OutboundMessageRequest) error {
	s.sent = append(s.sent, req)
	return s.err
}

func webhookEngine(svc *stubMessaging) *gin.Engine {
	h := NewWebhookHandler(svc, nil)
	r := gin.New()
	r.GET("/webhook", h.Verify)
	r.POST("/webhook", h.Receive)
	r.POST("/send", h.SendMessage)
	return r
}

func serveRaw(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestWebhookVerify(t *testing.T) {
	r := webhookEngine(&stubMessaging{})

	rec := serveRaw(r, http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=s3cret&hub.challenge=42", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "42", rec.Body.String())

	rec = serveRaw(r, http.MethodGet, "/webhook?hub.mode=subscribe&hub.verify_token=nope&hub.challenge=42", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestWebhookReceive(t *testing.T) {
	svc := &stubMessaging{}
	r := webhookEngine(svc)

	body := `{"object":"whatsapp_business_account","entry":[{"changes":[{"field":"messages","value":{"messages":[{"from":"91","id":"m1","type":"text","text":{"body":"/occupancy"}}]}}]}]}`
	rec := serveRaw(r, http.MethodPost, "/webhook", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, svc.payloads, 1)
	assert.Equal(t, "/occupancy", svc.payloads[0].Entry[0].Changes[0].Value.Messages[0].Body())

	assert.Equal(t, http.StatusBadRequest, serveRaw(r, http.MethodPost, "/webhook", "{").Code)

	svc.err = errors.New("send failed")
	assert.Equal(t, http.StatusInternalServerError, serveRaw(r, http.MethodPost, "/webhook", body).Code)
}

func TestWebhookSendMessage(t *testing.T) {
	svc := &stubMessaging{}
	r := webhookEngine(svc)

	assert.Equal(t, http.StatusAccepted, serveRaw(r, http.MethodPost, "/send", `{"message":"Van leaves at 9"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serveRaw(r, http.MethodPost, "/send", `{}`).Code)
	require.Len(t, svc.sent, 1)

	svc.err = service.ErrEmptyMessage
	assert.Equal(t, http.StatusBadRequest, serveRaw(r, http.MethodPost, "/send", `{"message":"  "}`).Code)

	svc.err = errors.New("unreachable")
	assert.Equal(t, http.StatusBadGateway, serveRaw(r, http.MethodPost, "/send", `{"message":"hi"}`).Code)
}
