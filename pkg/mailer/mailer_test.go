package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/noah-isme/pips-site-api/pkg/jobs"
)

type recordingSender struct {
	mu       sync.Mutex
	sent     []Message
	failures int
}

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failures > 0 {
		r.failures--
		return errors.New("provider unavailable")
	}
	r.sent = append(r.sent, msg)
	return nil
}

func (r *recordingSender) messages() []Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Message(nil), r.sent...)
}

func TestNotifierDeliversWithRetry(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sender := &recordingSender{failures: 1}
	outcomes := make(chan string, 1)
	n := NewNotifier(sender, NotifierConfig{
		Retries:    2,
		RetryDelay: time.Millisecond,
		OnDelivery: func(outcome string) { outcomes <- outcome },
	})
	n.Start(context.Background())

	require.NoError(t, n.Notify(Message{To: "office@example.com", Subject: "New Website Enquiry", Text: "body"}))
	select {
	case outcome := <-outcomes:
		assert.Equal(t, OutcomeSent, outcome)
	case <-time.After(2 * time.Second):
		t.Fatal("notification never delivered")
	}
	n.Stop()

	sent := sender.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "New Website Enquiry", sent[0].Subject)
}

func TestNotifierReportsExhaustedRetries(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	sender := &recordingSender{failures: 10}
	outcomes := make(chan string, 1)
	n := NewNotifier(sender, NotifierConfig{
		Retries:    1,
		RetryDelay: time.Millisecond,
		OnDelivery: func(outcome string) { outcomes <- outcome },
	})
	n.Start(context.Background())
	require.NoError(t, n.Notify(Message{To: "office@example.com"}))

	select {
	case outcome := <-outcomes:
		assert.Equal(t, OutcomeFailed, outcome)
	case <-time.After(2 * time.Second):
		t.Fatal("failure never reported")
	}
	n.Stop()
	assert.Empty(t, sender.messages())
}

type stalledSender struct{}

func (stalledSender) Send(ctx context.Context, _ Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestNotifierDropsWhenProviderStalls(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var failed int32
	n := NewNotifier(stalledSender{}, NotifierConfig{
		Workers: 1,
		OnDelivery: func(outcome string) {
			if outcome == OutcomeFailed {
				atomic.AddInt32(&failed, 1)
			}
		},
	})
	n.Start(context.Background())

	done := make(chan error, 1)
	go func() {
		var err error
		for i := 0; i < 40 && err == nil; i++ {
			err = n.Notify(Message{To: "office@example.com", Subject: "New Website Enquiry"})
		}
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, jobs.ErrQueueFull)
	case <-time.After(2 * time.Second):
		t.Fatal("Notify blocked behind a stalled provider")
	}
	assert.GreaterOrEqual(t, atomic.LoadInt32(&failed), int32(1))
	n.Stop()
}

func TestNotifierRejectsAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	n := NewNotifier(NewLogSender(nil), NotifierConfig{})
	n.Start(context.Background())
	n.Stop()
	assert.ErrorIs(t, n.Notify(Message{To: "x@example.com"}), jobs.ErrQueueClosed)
}

func TestSendgridSenderPostsMail(t *testing.T) {
	var payload map[string]interface{}
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		assert.Equal(t, sendgridEndpoint, r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	s := NewSendgridSender("SG.test", "PIPS Website", "noreply@example.com")
	s.host = srv.URL
	err := s.Send(context.Background(), Message{To: "office@example.com", Subject: "New Admission Application", Text: "hello", ReplyTo: "parent@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer SG.test", auth)
	personalizations := payload["personalizations"].([]interface{})
	first := personalizations[0].(map[string]interface{})
	assert.Equal(t, "New Admission Application", first["subject"])
	assert.Equal(t, "parent@example.com", payload["reply_to"].(map[string]interface{})["email"])
}

func TestSendgridSenderReportsRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	s := NewSendgridSender("SG.bad", "PIPS Website", "noreply@example.com")
	s.host = srv.URL
	err := s.Send(context.Background(), Message{To: "office@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status: 401")
}
