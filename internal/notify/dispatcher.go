package notify

import (
	"log"
	"sync"
)

const defaultQueueSize = 64

// Dispatcher decouples notification delivery from request handling: a
// single worker goroutine drains a bounded queue. Failures and overflow go
// to the dead-letter log, never back to the caller.
type Dispatcher struct {
	notifier  Notifier
	queue     chan Notification
	done      chan struct{}
	closeOnce sync.Once
}

// NewDispatcher starts the worker goroutine.
func NewDispatcher(notifier Notifier, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Notification, queueSize),
		done:     make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for n := range d.queue {
		if err := d.notifier.Notify(n); err != nil {
			log.Printf("notify dead-letter: to=%s subject=%q err=%v", n.To, n.Subject, err)
		}
	}
}

// Enqueue hands a notification to the worker without blocking.
func (d *Dispatcher) Enqueue(n Notification) {
	select {
	case d.queue <- n:
	default:
		log.Printf("notify dead-letter: queue full, dropped to=%s subject=%q", n.To, n.Subject)
	}
}

// Close stops accepting notifications and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
