package service

import (
	"context"

	"notekeep/models"
	"notekeep/store"
)

// Categories is read-only: the category set is seeded at startup and shared
// by all users.
type Categories struct {
	store store.Store
}

func NewCategories(st store.Store) *Categories {
	return &Categories{store: st}
}

func (s *Categories) List(ctx context.Context) ([]models.Category, error) {
	return s.store.ListCategories(ctx)
}
