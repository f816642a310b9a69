package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/metrics"
	mock_interfaces "quotedesk/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"go.uber.org/mock/gomock"
)

func TestNotificationDispatcher_DeliversAndCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockINotificationGateway(ctrl)
	m := metrics.New(prometheus.NewRegistry())

	gw.EXPECT().NotifyQuote(gomock.Any(), entities.Quote{ID: "QUOTE_ok"}).Return(nil)
	gw.EXPECT().NotifyQuote(gomock.Any(), entities.Quote{ID: "QUOTE_fail"}).Return(errors.New("ses down"))

	d := NewNotificationDispatcher(gw, 2, 4, time.Second, m)
	d.Dispatch(entities.Quote{ID: "QUOTE_ok"})
	d.Dispatch(entities.Quote{ID: "QUOTE_fail"})

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := testutil.ToFloat64(m.Notifications.WithLabelValues(metrics.ResultOK)); got != 1 {
		t.Fatalf("expected 1 sent, got %v", got)
	}
	if got := testutil.ToFloat64(m.Notifications.WithLabelValues(metrics.ResultError)); got != 1 {
		t.Fatalf("expected 1 failed, got %v", got)
	}
}

func TestNotificationDispatcher_DispatchDoesNotBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockINotificationGateway(ctrl)

	release := make(chan struct{})
	var mu sync.Mutex
	delivered := map[string]bool{}
	gw.EXPECT().NotifyQuote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, q entities.Quote) error {
			<-release
			mu.Lock()
			delivered[q.ID] = true
			mu.Unlock()
			return nil
		},
	).Times(5)

	d := NewNotificationDispatcher(gw, 1, 1, 5*time.Second, nil)

	start := time.Now()
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		d.Dispatch(entities.Quote{ID: id})
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Fatalf("dispatch blocked for %v", elapsed)
	}

	close(release)
	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	if len(delivered) != 5 {
		t.Fatalf("expected every quote delivered, got %v", delivered)
	}
}

func TestNotificationDispatcher_AttemptTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockINotificationGateway(ctrl)
	m := metrics.New(prometheus.NewRegistry())

	gw.EXPECT().NotifyQuote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ entities.Quote) error {
			<-ctx.Done()
			return ctx.Err()
		},
	)

	d := NewNotificationDispatcher(gw, 1, 1, 20*time.Millisecond, m)
	d.Dispatch(entities.Quote{ID: "slow"})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("close: %v", err)
	}
	if got := testutil.ToFloat64(m.Notifications.WithLabelValues(metrics.ResultError)); got != 1 {
		t.Fatalf("expected timed-out attempt counted as error, got %v", got)
	}
}

func TestNotificationDispatcher_PanicIsContained(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockINotificationGateway(ctrl)

	gw.EXPECT().NotifyQuote(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, entities.Quote) error { panic("template exploded") },
	)
	gw.EXPECT().NotifyQuote(gomock.Any(), gomock.Any()).Return(nil)

	d := NewNotificationDispatcher(gw, 1, 2, time.Second, nil)
	d.Dispatch(entities.Quote{ID: "boom"})
	d.Dispatch(entities.Quote{ID: "after"})
	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNotificationDispatcher_AfterClose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	gw := mock_interfaces.NewMockINotificationGateway(ctrl)

	d := NewNotificationDispatcher(gw, 1, 1, time.Second, nil)
	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("close: %v", err)
	}
	d.Dispatch(entities.Quote{ID: "late"})
	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("second close: %v", err)
	}
}
