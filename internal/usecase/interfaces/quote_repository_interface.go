package interfaces

import (
	"context"
	"quotedesk/internal/domain/entities"
)

// IQuoteRepository abstracts the single collection document holding every quote.
//
// Implementations must:
//   - treat a missing or unparseable document as an empty collection
//   - rewrite the whole collection on Append/Update
//   - report a failed write as an error so intake can fail the request

type IQuoteRepository interface {
	LoadAll(ctx context.Context) ([]entities.Quote, error)
	Append(ctx context.Context, q entities.Quote) (entities.Quote, error)
	Update(ctx context.Context, id string, mutate func(*entities.Quote)) (entities.Quote, error)
}
