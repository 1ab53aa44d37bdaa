package readings

import (
	"context"
	"errors"
	"time"
)

// ErrNoReadings is returned when a bulk insert carries no records.
var ErrNoReadings = errors.New("readings must not be empty")

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List retrieves the readings matching the query. Validation failures are
// reported as ErrInvalidQuery before any database work happens.
func (s *Service) List(ctx context.Context, q Query) ([]Reading, error) {
	filter, page, err := BuildFilter(q)
	if err != nil {
		return nil, err
	}

	result, err := s.repo.Find(ctx, filter, page)
	if err != nil {
		return nil, err
	}
	if result == nil {
		// An empty page serializes as [] rather than null.
		result = []Reading{}
	}

	return result, nil
}

// Record stamps each payload with the current server time and bulk-inserts
// the batch. Returns the number of readings written.
func (s *Service) Record(ctx context.Context, batch []NewReading) (int, error) {
	if len(batch) == 0 {
		return 0, ErrNoReadings
	}

	now := s.now()
	records := make([]Reading, len(batch))
	for i, n := range batch {
		records[i] = n.Stamp(now)
	}

	return s.repo.Insert(ctx, records)
}
