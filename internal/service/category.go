package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LSkevi/PieTracker/internal/models"
	"github.com/LSkevi/PieTracker/internal/store"
	"github.com/LSkevi/PieTracker/internal/util"
)

// DefaultCategories is the fixed built-in set. Defaults are implicit:
// they are merged into every read, never stored per-user, and cannot be
// deleted.
var DefaultCategories = []string{"Food", "Transportation", "Shopping", "Entertainment"}

// DefaultColor is assigned when a client adds a category without one.
const DefaultColor = "#a8b5a0"

func isDefaultCategory(name string) bool {
	for _, d := range DefaultCategories {
		if d == name {
			return true
		}
	}
	return false
}

// CategoryService owns per-user category CRUD over the injected store.
type CategoryService struct {
	store store.Store
}

func NewCategoryService(st store.Store) *CategoryService {
	return &CategoryService{store: st}
}

// List returns the defaults first, then the user's custom names sorted,
// with no duplicates.
func (s *CategoryService) List(userID string) ([]string, error) {
	if err := s.store.EnsureInitialized(userID); err != nil {
		return nil, fmt.Errorf("init namespace: %w", err)
	}

	names := make([]string, 0, len(DefaultCategories))
	names = append(names, DefaultCategories...)

	custom := make([]string, 0)
	for name := range s.store.Categories(userID) {
		if !isDefaultCategory(name) {
			custom = append(custom, name)
		}
	}
	sort.Strings(custom)

	return append(names, custom...), nil
}

// Colors returns only the user's private map: no defaults, no other
// users' entries.
func (s *CategoryService) Colors(userID string) (map[string]string, error) {
	if err := s.store.EnsureInitialized(userID); err != nil {
		return nil, fmt.Errorf("init namespace: %w", err)
	}
	return s.store.Categories(userID), nil
}

// Add inserts a new category. Name comparison is case-sensitive; a
// collision with a default or an existing custom name is a conflict.
func (s *CategoryService) Add(userID, name, color string) error {
	name = strings.TrimSpace(name)
	if err := util.ValidateCategoryName(name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if color == "" {
		color = DefaultColor
	}

	if err := s.store.EnsureInitialized(userID); err != nil {
		return fmt.Errorf("init namespace: %w", err)
	}

	if isDefaultCategory(name) {
		return ErrConflict
	}
	if _, exists := s.store.Categories(userID)[name]; exists {
		return ErrConflict
	}

	return s.store.PutCategory(userID, name, color)
}

// Delete removes a custom category and cascades deletion to the user's
// expenses in it, returning how many expense records were removed.
// Defaults are protected; an absent name reports a generic not-found
// without distinguishing "no such category" from "someone else's".
func (s *CategoryService) Delete(userID, name string) (int, error) {
	if isDefaultCategory(name) {
		return 0, ErrForbidden
	}

	if err := s.store.EnsureInitialized(userID); err != nil {
		return 0, fmt.Errorf("init namespace: %w", err)
	}

	removed, err := s.store.DeleteCategory(userID, name)
	if err != nil {
		return 0, err
	}
	if !removed {
		return 0, ErrNotFound
	}

	all := s.store.Expenses()
	kept := make([]models.Expense, 0, len(all))
	deleted := 0
	for _, e := range all {
		if e.UserID == userID && e.Category == name {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	if deleted > 0 {
		if err := s.store.ReplaceExpenses(kept); err != nil {
			return deleted, err
		}
	}
	return deleted, nil
}
