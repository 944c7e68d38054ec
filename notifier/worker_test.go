package notifier

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/badapples/registry/models"
	"github.com/badapples/registry/repositories/mocks"
)

// fakeMailer returns queued errors in order, then succeeds
type fakeMailer struct {
	mu   sync.Mutex
	errs []error
	sent []models.Notification
}

func (f *fakeMailer) Send(ctx context.Context, n models.Notification) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return err
		}
	}
	f.sent = append(f.sent, n)
	return nil
}

func message(id int64, attempts int) models.OutboxMessage {
	return models.OutboxMessage{
		ID:       id,
		Attempts: attempts,
		Status:   models.OutboxPending,
		Notification: models.Notification{
			Subject:    "New Dispute Submitted - incidents #1",
			Recipients: []string{"admin@example.com"},
			Body:       "body",
		},
	}
}

func TestWorker_DrainOnce(t *testing.T) {
	ctx := context.Background()
	outbox := mocks.NewMockOutboxRepository(t)
	mailer := &fakeMailer{errs: []error{nil, errors.New("connection refused"), errors.New("connection refused")}}

	outbox.EXPECT().ListPending(ctx, batchSize).Return([]models.OutboxMessage{
		message(1, 0),
		message(2, 0),
		message(3, 4),
	}, nil)
	outbox.EXPECT().MarkDelivered(ctx, int64(1), models.OutboxSent).Return(nil)
	outbox.EXPECT().MarkAttempt(ctx, int64(2), "connection refused", false).Return(nil)
	outbox.EXPECT().MarkAttempt(ctx, int64(3), "connection refused", true).Return(nil)

	w := NewWorker(outbox, mailer, time.Minute, 5)
	n, err := w.DrainOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, mailer.sent, 1)
}

func TestWorker_SkipsWhenNotConfigured(t *testing.T) {
	ctx := context.Background()
	outbox := mocks.NewMockOutboxRepository(t)

	outbox.EXPECT().ListPending(ctx, batchSize).Return([]models.OutboxMessage{message(7, 0)}, nil)
	outbox.EXPECT().MarkDelivered(ctx, int64(7), models.OutboxSkipped).Return(nil)

	n, err := NewWorker(outbox, NoopMailer{}, time.Minute, 3).DrainOnce(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestWorker_StoreFailure(t *testing.T) {
	ctx := context.Background()
	outbox := mocks.NewMockOutboxRepository(t)
	storeErr := models.StoreError("failed to query outbox", errors.New("database is locked"))

	outbox.EXPECT().ListPending(ctx, batchSize).Return(nil, storeErr)

	_, err := NewWorker(outbox, &fakeMailer{}, time.Minute, 3).DrainOnce(ctx)

	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
}

func TestWorker_RunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	outbox := mocks.NewMockOutboxRepository(t)

	drained := make(chan struct{})
	var once sync.Once
	outbox.EXPECT().ListPending(mock.Anything, batchSize).
		RunAndReturn(func(ctx context.Context, limit int) ([]models.OutboxMessage, error) {
			once.Do(func() { close(drained) })
			return nil, nil
		})

	done := make(chan struct{})
	go func() {
		NewWorker(outbox, &fakeMailer{}, 10*time.Millisecond, 3).Run(ctx)
		close(done)
	}()

	<-drained
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}

func TestSMTPMailer_Send(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 587, Username: "u", Password: "p", From: "noreply@badapples.org"})
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := m.Send(context.Background(), models.Notification{
		Subject:    "Dispute Resolution - incidents #42",
		Recipients: []string{"citizen@example.com"},
		Body:       "line one\nline two\n",
	})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "noreply@badapples.org", gotFrom)
	assert.Equal(t, []string{"citizen@example.com"}, gotTo)

	msg := string(gotMsg)
	assert.Contains(t, msg, "Subject: Dispute Resolution - incidents #42\r\n")
	assert.Contains(t, msg, "@badapples.org>\r\n")
	assert.True(t, strings.HasSuffix(msg, "line one\r\nline two\r\n"))
}

func TestSMTPMailer_SendError(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 25, From: "noreply@badapples.org"})
	m.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		assert.Nil(t, a, "no auth without a username")
		return errors.New("550 mailbox unavailable")
	}

	err := m.Send(context.Background(), models.Notification{Recipients: []string{"x@example.com"}})

	assert.ErrorContains(t, err, "550 mailbox unavailable")
}
