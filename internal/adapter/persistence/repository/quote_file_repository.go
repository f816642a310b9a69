package repository

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quotedesk/internal/domain/entities"
	"quotedesk/internal/infrastructure/lock"
	"quotedesk/internal/infrastructure/logging"
	"quotedesk/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const defaultQuotesFile = "data/quotes.json"

// QuoteFileRepository keeps every quote in one JSON array document.
//
// Every call re-reads the document; nothing is cached between requests.
// Append/Update rewrite the whole document through a temp file + rename and
// run inside the configured lock. With lock.NoopLocker two concurrent writers
// can each read the same state and the later rename wins.

type QuoteFileRepository struct {
	path     string
	locker   lock.Locker
	lockWait time.Duration

	// afterLoad runs between the read and the write of a mutation (tests only).
	afterLoad func()
}

var _ interfaces.IQuoteRepository = (*QuoteFileRepository)(nil)

func NewQuoteFileRepository(path string, locker lock.Locker) *QuoteFileRepository {
	path = strings.TrimSpace(path)
	if path == "" {
		path = getenvDefault("QUOTES_FILE", defaultQuotesFile)
	}
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	return &QuoteFileRepository{path: path, locker: locker}
}

// WithLockWait bounds how long a writer waits for the lock. Zero waits as
// long as the caller's context allows.
func (r *QuoteFileRepository) WithLockWait(d time.Duration) *QuoteFileRepository {
	r.lockWait = d
	return r
}

func (r *QuoteFileRepository) Path() string {
	return r.path
}

func (r *QuoteFileRepository) LoadAll(_ context.Context) ([]entities.Quote, error) {
	return r.load()
}

func (r *QuoteFileRepository) Append(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	err := r.mutate(ctx, func(quotes []entities.Quote) ([]entities.Quote, bool) {
		return append(quotes, q), true
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

// Update returns a zero Quote and nil error when id is absent.
func (r *QuoteFileRepository) Update(ctx context.Context, id string, mutate func(*entities.Quote)) (entities.Quote, error) {
	var updated entities.Quote
	err := r.mutate(ctx, func(quotes []entities.Quote) ([]entities.Quote, bool) {
		for i := range quotes {
			if quotes[i].ID != id {
				continue
			}
			createdAt := quotes[i].CreatedAt
			mutate(&quotes[i])
			quotes[i].ID = id
			quotes[i].CreatedAt = createdAt
			updated = quotes[i]
			return quotes, true
		}
		return quotes, false
	})
	if err != nil {
		return entities.Quote{}, err
	}
	return updated, nil
}

func (r *QuoteFileRepository) mutate(ctx context.Context, apply func([]entities.Quote) ([]entities.Quote, bool)) error {
	lockCtx := ctx
	if r.lockWait > 0 {
		var cancel context.CancelFunc
		lockCtx, cancel = context.WithTimeout(ctx, r.lockWait)
		defer cancel()
	}
	unlock, err := r.locker.Lock(lockCtx)
	if err != nil {
		logging.L().WithFields(logrus.Fields{"path": r.path, "err": err}).Error("[quote][store] lock acquire failed")
		return err
	}
	defer unlock()

	quotes, err := r.load()
	if err != nil {
		return err
	}
	if r.afterLoad != nil {
		r.afterLoad()
	}
	next, changed := apply(quotes)
	if !changed {
		return nil
	}
	return r.save(next)
}

func (r *QuoteFileRepository) load() ([]entities.Quote, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []entities.Quote{}, nil
		}
		return nil, err
	}
	var quotes []entities.Quote
	if err := json.Unmarshal(data, &quotes); err != nil {
		logging.L().WithFields(logrus.Fields{"path": r.path, "err": err}).
			Warn("[quote][store] invalid quotes document, treating as empty")
		return []entities.Quote{}, nil
	}
	if quotes == nil {
		quotes = []entities.Quote{}
	}
	return quotes, nil
}

func (r *QuoteFileRepository) save(quotes []entities.Quote) error {
	data, err := json.MarshalIndent(quotes, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(r.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	// Each write gets its own temp file so overlapping writers never share one.
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
