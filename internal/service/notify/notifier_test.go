package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	client "github.com/lovelyhome/carehome/pkg/clients/whatsapp"
)

type fakeClient struct {
	requests    []client.SendTextMessageRequest
	hadDeadline bool
	err         error
}

func (f *fakeClient) SendTextMessage(ctx context.Context, req client.SendTextMessageRequest) (*client.SendTextMessageResponse, error) {
	_, f.hadDeadline = ctx.Deadline()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &client.SendTextMessageResponse{}, nil
}

func TestWhatsAppNotifier(t *testing.T) {
	fc := &fakeClient{}
	n := NewWhatsAppNotifier(fc, "919876543210", nil)

	require.NoError(t, n.Notify(context.Background(), "3 checkups due"))
	require.Len(t, fc.requests, 1)
	assert.Equal(t, "919876543210", fc.requests[0].To)
	assert.Equal(t, "3 checkups due", fc.requests[0].Body)
	assert.True(t, fc.hadDeadline)

	assert.ErrorIs(t, n.Notify(context.Background(), ""), ErrEmptyMessage)
	assert.Len(t, fc.requests, 1)
}

func TestWhatsAppNotifier_WrapsClientError(t *testing.T) {
	boom := errors.New("boom")
	n := NewWhatsAppNotifier(&fakeClient{err: boom}, "1", nil)
	assert.ErrorIs(t, n.Notify(context.Background(), "hi"), boom)
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	n := NewLogNotifier(zap.New(core))

	require.NoError(t, n.Notify(context.Background(), "hello"))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "hello", logs.All()[0].ContextMap()["message"])

	assert.ErrorIs(t, n.Notify(context.Background(), ""), ErrEmptyMessage)
}
