package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/authcore/account-service/internal/core/ports"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent []ports.OutboundEmail
	err  error
	done chan struct{}
}

func newRecordingMailer(expect int) *recordingMailer {
	m := &recordingMailer{done: make(chan struct{})}
	go func() {
		for {
			m.mu.Lock()
			n := len(m.sent)
			m.mu.Unlock()
			if n >= expect {
				close(m.done)
				return
			}
			time.Sleep(time.Millisecond)
		}
	}()
	return m
}

func (m *recordingMailer) Send(email ports.OutboundEmail) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return m.err
}

func TestDispatcher_DeliversEnqueuedEmails(t *testing.T) {
	mailer := newRecordingMailer(3)
	d := NewDispatcher(2, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for _, to := range []string{"a@example.com", "b@example.com", "a@example.com"} {
		d.Enqueue(ports.OutboundEmail{To: to, Subject: "s", Body: "b"})
	}

	select {
	case <-mailer.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("emails not delivered in time")
	}

	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if len(mailer.sent) != 3 {
		t.Fatalf("expected 3 deliveries, got %d", len(mailer.sent))
	}
}

func TestDispatcher_SendFailureIsSwallowed(t *testing.T) {
	mailer := newRecordingMailer(1)
	mailer.err = errors.New("smtp down")
	d := NewDispatcher(1, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Enqueue never surfaces the delivery failure.
	d.Enqueue(ports.OutboundEmail{To: "a@example.com", Subject: "s", Body: "b"})

	select {
	case <-mailer.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("delivery attempt not made in time")
	}
}

func TestDispatcher_ShardIsStablePerRecipient(t *testing.T) {
	d := NewDispatcher(4, &recordingMailer{}, zerolog.Nop())

	first := d.shardIndex("bob@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("bob@example.com"); got != first {
			t.Fatalf("shard index not stable: %d vs %d", got, first)
		}
	}
}
