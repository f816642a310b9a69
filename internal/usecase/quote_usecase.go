package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/infrastructure/metrics"
	"quotedesk/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// IQuoteUseCase exposes quote intake and lifecycle operations.
//
//   - POST /quotes            => Submit()
//   - GET /quotes (+ export)  => List(), Stats()
//   - GET /quotes/{id}        => GetByID()
//   - PATCH /quotes/{id}      => SetStatus()
//   - POST /notifications/test => SendTestNotification()
type IQuoteUseCase interface {
	Submit(ctx context.Context, s QuoteSubmission) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	SetStatus(ctx context.Context, id string, status string) (entities.Quote, error)
	List(ctx context.Context, filter QuoteFilter) ([]entities.Quote, error)
	Stats(ctx context.Context) (QuoteStats, error)
	SendTestNotification(ctx context.Context, kind string) error
}

// Test notification kinds.
const (
	TestNotificationPlain = "test"
	TestNotificationQuote = "quote"
)

type QuoteUseCase struct {
	repo       interfaces.IQuoteRepository
	dispatcher interfaces.INotificationDispatcher
	gateway    interfaces.INotificationGateway
	validator  *QuoteValidator
	metrics    *metrics.Metrics
	now        func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

// NewQuoteUseCase wires the store with optional notification plumbing.
// A nil dispatcher disables admin notifications for new quotes; a nil
// gateway disables the test notification.
func NewQuoteUseCase(
	repo interfaces.IQuoteRepository,
	dispatcher interfaces.INotificationDispatcher,
	gateway interfaces.INotificationGateway,
	m *metrics.Metrics,
) *QuoteUseCase {
	return &QuoteUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		gateway:    gateway,
		validator:  NewQuoteValidator(),
		metrics:    m,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// NewQuoteID returns QUOTE_<unix millis>_<9 lowercase alphanumerics>.
func NewQuoteID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return "QUOTE_" + strconv.FormatInt(now.UnixMilli(), 10) + "_" + suffix
}

func (u *QuoteUseCase) Submit(ctx context.Context, s QuoteSubmission) (entities.Quote, error) {
	if err := u.validator.Validate(s); err != nil {
		u.metrics.Submitted(metrics.ResultInvalid)
		logging.L().WithField("err", err).Info("[quote][usecase] submission rejected")
		return entities.Quote{}, err
	}

	now := u.now()
	submittedAt := now
	if raw := strings.TrimSpace(s.SubmittedAt); raw != "" {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			submittedAt = t.UTC()
		}
	}

	q := entities.Quote{
		ID:           NewQuoteID(now),
		ServiceType:  entities.ServiceType(s.ServiceType),
		CleaningType: s.CleaningType,
		Contact: entities.QuoteContact{
			Name:  s.Contact.Name,
			Phone: s.Contact.Phone,
			Email: s.Contact.Email,
		},
		Location: entities.QuoteLocation{
			Address:       s.Location.Address,
			DetailAddress: s.Location.DetailAddress,
			Floor:         s.Location.Floor,
		},
		Space:          s.Space,
		Schedule:       s.Schedule,
		AdditionalInfo: s.AdditionalInfo,
		Status:         entities.QuoteStatusNew,
		CreatedAt:      now,
		SubmittedAt:    submittedAt,
	}

	stored, err := u.repo.Append(ctx, q)
	if err != nil {
		u.metrics.Submitted(metrics.ResultError)
		logging.L().WithFields(logrus.Fields{"id": q.ID, "err": err}).Error("[quote][usecase] append failed")
		return entities.Quote{}, fmt.Errorf("%w: %w", ErrQuoteStorage, err)
	}
	u.metrics.Submitted(metrics.ResultOK)
	logging.L().WithFields(logrus.Fields{
		"id":      stored.ID,
		"service": stored.ServiceType,
		"phone":   logging.RedactPhone(stored.Contact.Phone),
	}).Info("[quote][usecase] quote stored")

	if u.dispatcher == nil {
		logging.L().WithField("id", stored.ID).Info("[quote][usecase] notification skipped: admin email not configured")
	} else {
		u.dispatcher.Dispatch(stored)
	}
	return stored, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return entities.Quote{}, fmt.Errorf("%w: %w", ErrQuoteStorage, err)
	}
	for _, q := range quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return entities.Quote{}, ErrQuoteNotFound
}

// SetStatus moves a quote to any recognized status and stamps updatedAt.
func (u *QuoteUseCase) SetStatus(ctx context.Context, id string, status string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}
	next, ok := entities.ParseQuoteStatus(status)
	if !ok {
		return entities.Quote{}, ErrInvalidStatus
	}

	now := u.now()
	updated, err := u.repo.Update(ctx, id, func(q *entities.Quote) {
		q.Status = next
		q.UpdatedAt = &now
	})
	if err != nil {
		logging.L().WithFields(logrus.Fields{"id": id, "err": err}).Error("[quote][usecase] status update failed")
		return entities.Quote{}, fmt.Errorf("%w: %w", ErrQuoteStorage, err)
	}
	if updated.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}

	u.metrics.StatusChanged(string(next))
	logging.L().WithFields(logrus.Fields{"id": id, "status": next}).Info("[quote][usecase] status changed")
	return updated, nil
}

// List returns the filtered quotes in admin display order.
func (u *QuoteUseCase) List(ctx context.Context, filter QuoteFilter) ([]entities.Quote, error) {
	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuoteStorage, err)
	}
	return SortQuotes(FilterQuotes(quotes, filter)), nil
}

func (u *QuoteUseCase) Stats(ctx context.Context) (QuoteStats, error) {
	quotes, err := u.repo.LoadAll(ctx)
	if err != nil {
		return QuoteStats{}, fmt.Errorf("%w: %w", ErrQuoteStorage, err)
	}
	return AggregateStats(quotes), nil
}

// SendTestNotification sends a plain test mail for kind "test" and a
// sample new-quote notification otherwise. Nothing is persisted.
func (u *QuoteUseCase) SendTestNotification(ctx context.Context, kind string) error {
	if u.gateway == nil {
		return ErrNotificationDisabled
	}

	var err error
	if strings.EqualFold(strings.TrimSpace(kind), TestNotificationPlain) {
		err = u.gateway.SendTest(ctx)
	} else {
		err = u.gateway.NotifyQuote(ctx, sampleQuote(u.now()))
	}
	if err != nil {
		logging.L().WithFields(logrus.Fields{"kind": kind, "err": err}).Error("[quote][usecase] test notification failed")
		return err
	}
	return nil
}

func sampleQuote(now time.Time) entities.Quote {
	return entities.Quote{
		ID:             "TEST_" + strconv.FormatInt(now.UnixMilli(), 10),
		ServiceType:    entities.ServiceTypeDirect,
		CleaningType:   "일반 가정 청소 (테스트)",
		Contact:        entities.QuoteContact{Name: "테스트 고객", Phone: "010-0000-0000"},
		Location:       entities.QuoteLocation{Address: "서울 서초구"},
		AdditionalInfo: "이메일 발송 테스트입니다. 시스템이 정상적으로 작동하고 있습니다.",
		Status:         entities.QuoteStatusNew,
		CreatedAt:      now,
		SubmittedAt:    now,
	}
}
