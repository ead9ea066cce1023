package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/okian/practicedash/internal/domain/model"
	"github.com/okian/practicedash/pkg/logger"
)

// Catalog is an immutable, in-memory Store. It is safe for concurrent readers
// because nothing is written after NewCatalog returns.
type Catalog struct {
	seed   []model.Practice
	logger logger.Logger

	practices []model.Practice
	index     map[string]int
	globalMax float64
}

var _ Store = (*Catalog)(nil)

// NewCatalog indexes the practices. Without WithPractices it serves
// DefaultPractices. Ids must be non-empty and unique.
func NewCatalog(ctx context.Context, opts ...Option) (*Catalog, error) {
	c := &Catalog{seed: DefaultPractices()}
	for _, opt := range opts {
		opt(c)
	}

	c.practices = make([]model.Practice, 0, len(c.seed))
	c.index = make(map[string]int, len(c.seed))
	for i, p := range c.seed {
		id := strings.TrimSpace(p.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: record %d (%q)", ErrEmptyID, i, p.Name)
		}
		if _, dup := c.index[id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, id)
		}
		p = p.Clone()
		p.ID = id
		c.index[id] = len(c.practices)
		c.practices = append(c.practices, p)
		c.globalMax = max(c.globalMax, p.TrendMax())
	}
	c.seed = nil

	if c.logger != nil {
		c.logger.Debug(ctx, "practice catalog indexed",
			logger.Int("practices", len(c.practices)),
			logger.Float64("globalMax", c.globalMax),
		)
	}
	return c, nil
}

// All returns copies of every practice in catalog order.
func (c *Catalog) All(_ context.Context) ([]model.Practice, error) {
	out := make([]model.Practice, len(c.practices))
	for i, p := range c.practices {
		out[i] = p.Clone()
	}
	return out, nil
}

// Get returns a copy of the practice with the given id.
func (c *Catalog) Get(_ context.Context, id string) (model.Practice, error) {
	i, ok := c.index[id]
	if !ok {
		return model.Practice{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.practices[i].Clone(), nil
}

// GlobalMax returns the largest trend value across the catalog, 0 when empty.
func (c *Catalog) GlobalMax(_ context.Context) float64 {
	return c.globalMax
}

// Count returns the number of practices.
func (c *Catalog) Count(_ context.Context) int {
	return len(c.practices)
}
