package interfaces

import "quotedesk/internal/domain/entities"

// INotificationDispatcher hands a stored quote off for delivery without blocking.
type INotificationDispatcher interface {
	Dispatch(q entities.Quote)
}
