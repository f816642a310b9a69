package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// INotificationGateway abstracts the email provider used to tell the admin
// about a new quote. Failures are only ever logged by callers.
type INotificationGateway interface {
	NotifyQuote(ctx context.Context, q entities.Quote) error
	SendTest(ctx context.Context) error
}
