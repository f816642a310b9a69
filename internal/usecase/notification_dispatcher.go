package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/infrastructure/metrics"
	"quotedesk/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const defaultNotifyTimeout = 10 * time.Second

// NotificationDispatcher delivers new-quote notifications off the request
// path. Outcomes are only logged and counted; nothing is retried.
type NotificationDispatcher struct {
	gateway interfaces.INotificationGateway
	queue   chan entities.Quote
	timeout time.Duration
	metrics *metrics.Metrics

	mu       sync.RWMutex
	closed   bool
	workers  sync.WaitGroup
	detached sync.WaitGroup
}

var _ interfaces.INotificationDispatcher = (*NotificationDispatcher)(nil)

func NewNotificationDispatcher(gateway interfaces.INotificationGateway, workers, queueSize int, timeout time.Duration, m *metrics.Metrics) *NotificationDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	d := &NotificationDispatcher{
		gateway: gateway,
		queue:   make(chan entities.Quote, queueSize),
		timeout: timeout,
		metrics: m,
	}
	for i := 0; i < workers; i++ {
		d.workers.Add(1)
		go d.run()
	}
	return d
}

// Dispatch never blocks: a full queue hands the quote to its own goroutine.
func (d *NotificationDispatcher) Dispatch(q entities.Quote) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.metrics.Notified(metrics.ResultSkipped, 0)
		logging.L().WithField("id", q.ID).Warn("[quote][notify] dispatcher closed, notification dropped")
		return
	}

	select {
	case d.queue <- q:
	default:
		d.metrics.Notified(metrics.ResultOverflow, 0)
		d.detached.Add(1)
		go func() {
			defer d.detached.Done()
			d.deliver(q)
		}()
	}
}

// Close stops accepting work and waits for queued deliveries until ctx ends.
func (d *NotificationDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.workers.Wait()
		d.detached.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *NotificationDispatcher) run() {
	defer d.workers.Done()
	for q := range d.queue {
		d.deliver(q)
	}
}

func (d *NotificationDispatcher) deliver(q entities.Quote) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	start := time.Now()
	err := d.send(ctx, q)
	elapsed := time.Since(start)

	fields := logrus.Fields{"id": q.ID, "elapsed_ms": elapsed.Milliseconds()}
	if err != nil {
		d.metrics.Notified(metrics.ResultError, elapsed)
		fields["err"] = err
		logging.L().WithFields(fields).Error("[quote][notify] admin notification failed")
		return
	}
	d.metrics.Notified(metrics.ResultOK, elapsed)
	logging.L().WithFields(fields).Info("[quote][notify] admin notification sent")
}

func (d *NotificationDispatcher) send(ctx context.Context, q entities.Quote) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("notification panic: %v", r)
		}
	}()
	return d.gateway.NotifyQuote(ctx, q)
}
