package domain

import (
	"context"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/models"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	NextID() string
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// ContentSuggester drafts outreach content for a lead.
type ContentSuggester interface {
	Suggest(ctx context.Context, lead models.Lead) (string, error)
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.T
}
