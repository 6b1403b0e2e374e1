// Package store persists users, expenses and per-user category maps.
//
// The Store interface is the seam between services and persistence: it
// is a key-value view keyed by user id, so the JSON-file backing can be
// swapped for a locking database store without touching service logic.
package store

import "github.com/LSkevi/PieTracker/internal/models"

// LegacyNamespace is the reserved category-map key holding data written
// before per-user namespacing existed. It is copied into each new
// user's private map on first access and never served directly.
const LegacyNamespace = "__legacy__"

type Store interface {
	// EnsureInitialized lazily creates the category namespace for a
	// user: the first call copies the legacy map (or an empty map) into
	// a private entry; later calls are no-ops.
	EnsureInitialized(userID string) error

	// Categories returns a copy of the user's private category map.
	// Defaults are not stored here; merging them is service policy.
	Categories(userID string) map[string]string
	PutCategory(userID, name, color string) error
	// DeleteCategory removes the entry and reports whether it existed.
	DeleteCategory(userID, name string) (bool, error)

	Expenses() []models.Expense
	AppendExpense(e models.Expense) error
	// ReplaceExpenses overwrites the whole expense list (cascade
	// deletes rewrite the file wholesale, like every other mutation).
	ReplaceExpenses(list []models.Expense) error

	Users() []models.User
	User(id string) (models.User, bool)
	FindUserByEmail(email string) (models.User, bool)
	FindUserByUsername(username string) (models.User, bool)
	PutUser(u models.User) error
	// DeleteUser removes the account, its category namespace and its
	// expense records.
	DeleteUser(id string) error
}
