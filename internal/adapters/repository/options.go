package repository

import (
	"github.com/okian/practicedash/internal/domain/model"
	"github.com/okian/practicedash/pkg/logger"
)

// Option applies a configuration option to the Catalog.
type Option func(*Catalog)

// WithPractices replaces the built-in records.
func WithPractices(practices []model.Practice) Option {
	return func(c *Catalog) {
		if practices != nil {
			c.seed = practices
		}
	}
}

// WithLogger sets the logger used while indexing.
func WithLogger(l logger.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.logger = l
		}
	}
}
