// Package repository holds the read-only practice catalog.
package repository

import (
	"context"

	"github.com/okian/practicedash/internal/domain/model"
)

// Store provides read access to the practice records.
type Store interface {
	// All returns every practice in catalog order.
	All(ctx context.Context) ([]model.Practice, error)

	// Get returns a practice by id, or ErrNotFound.
	Get(ctx context.Context, id string) (model.Practice, error)

	// GlobalMax returns the largest monthly trend value across all practices.
	GlobalMax(ctx context.Context) float64

	// Count returns the number of practices.
	Count(ctx context.Context) int
}
