package notify

import (
	"errors"
	"sync"
	"testing"
)

type recordingNotifier struct {
	mu   sync.Mutex
	sent []Notification
	err  error
}

func (r *recordingNotifier) Notify(n Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
	return r.err
}

func (r *recordingNotifier) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sent)
}

func TestDispatcherDeliversQueuedNotifications(t *testing.T) {
	notifier := &recordingNotifier{}
	dispatcher := NewDispatcher(notifier, 4)

	dispatcher.Enqueue(Notification{To: "a@example.com", Subject: "one"})
	dispatcher.Enqueue(Notification{To: "b@example.com", Subject: "two"})
	dispatcher.Close()

	if got := notifier.count(); got != 2 {
		t.Fatalf("expected 2 delivered notifications, got %d", got)
	}
}

func TestDispatcherSwallowsDeliveryFailures(t *testing.T) {
	notifier := &recordingNotifier{err: errors.New("smtp down")}
	dispatcher := NewDispatcher(notifier, 4)

	// Enqueue never surfaces the delivery error.
	dispatcher.Enqueue(Notification{To: "a@example.com", Subject: "doomed"})
	dispatcher.Close()

	if got := notifier.count(); got != 1 {
		t.Fatalf("expected 1 attempted delivery, got %d", got)
	}
}

func TestDispatcherCloseIsIdempotent(t *testing.T) {
	dispatcher := NewDispatcher(&recordingNotifier{}, 1)
	dispatcher.Close()
	dispatcher.Close()
}

func TestSMTPMailerRequiresConfiguration(t *testing.T) {
	mailer := &SMTPMailer{}
	if err := mailer.Notify(Notification{To: "a@example.com"}); err == nil {
		t.Fatal("expected error without an SMTP address")
	}

	mailer.Addr = "localhost:2525"
	if err := mailer.Notify(Notification{}); err == nil {
		t.Fatal("expected error without a recipient")
	}
}
