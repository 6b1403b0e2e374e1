package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/LSkevi/PieTracker/internal/config"
	"github.com/LSkevi/PieTracker/internal/models"
)

// FileStore keeps everything in memory and rewrites the whole JSON file
// after each mutation. The mutex guards the in-memory maps; requests
// touching the same user are expected to be serialized by the caller.
type FileStore struct {
	mu sync.Mutex

	expensesPath   string
	categoriesPath string
	usersPath      string

	expenses   []models.Expense
	categories map[string]map[string]string // user id -> name -> color
	users      map[string]models.User
}

// Open loads (or creates) the data directory and reads all three files.
func Open(cfg config.StorageConfig) (*FileStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	s := &FileStore{
		expensesPath:   filepath.Join(cfg.Dir, cfg.ExpensesFile),
		categoriesPath: filepath.Join(cfg.Dir, cfg.CategoriesFile),
		usersPath:      filepath.Join(cfg.Dir, cfg.UsersFile),
		categories:     make(map[string]map[string]string),
		users:          make(map[string]models.User),
	}

	if err := s.loadExpenses(); err != nil {
		return nil, err
	}
	if err := s.loadCategories(); err != nil {
		return nil, err
	}
	if err := s.loadUsers(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) loadExpenses() error {
	data, err := os.ReadFile(s.expensesPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.expensesPath, err)
	}
	var list []models.Expense
	if err := json.Unmarshal(data, &list); err != nil {
		// corrupt or foreign content: start empty, same as the original
		return nil
	}
	s.expenses = list
	return nil
}

// loadCategories tolerates the three historical formats of
// categories.json: namespaced map, flat {name: color} map (treated as
// the legacy namespace), and bare list (treated as empty).
func (s *FileStore) loadCategories() error {
	data, err := os.ReadFile(s.categoriesPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.categoriesPath, err)
	}

	var namespaced map[string]map[string]string
	if err := json.Unmarshal(data, &namespaced); err == nil {
		if namespaced != nil {
			s.categories = namespaced
		}
		return nil
	}

	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err == nil && len(flat) > 0 {
		s.categories = map[string]map[string]string{LegacyNamespace: flat}
		return nil
	}

	// list or anything else: start empty
	return nil
}

func (s *FileStore) loadUsers() error {
	data, err := os.ReadFile(s.usersPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", s.usersPath, err)
	}
	var users map[string]models.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil
	}
	if users != nil {
		s.users = users
	}
	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func (s *FileStore) saveExpenses() error {
	list := s.expenses
	if list == nil {
		list = []models.Expense{}
	}
	return writeJSON(s.expensesPath, list)
}

func (s *FileStore) saveCategories() error {
	return writeJSON(s.categoriesPath, s.categories)
}

func (s *FileStore) saveUsers() error {
	return writeJSON(s.usersPath, s.users)
}

// ---------- categories ----------

func (s *FileStore) EnsureInitialized(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[userID]; ok {
		return nil
	}

	ns := make(map[string]string)
	for name, color := range s.categories[LegacyNamespace] {
		ns[name] = color
	}
	s.categories[userID] = ns
	return s.saveCategories()
}

func (s *FileStore) Categories(userID string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]string, len(s.categories[userID]))
	for name, color := range s.categories[userID] {
		out[name] = color
	}
	return out
}

func (s *FileStore) PutCategory(userID, name, color string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.categories[userID]
	if !ok {
		ns = make(map[string]string)
		s.categories[userID] = ns
	}
	ns[name] = color
	return s.saveCategories()
}

func (s *FileStore) DeleteCategory(userID, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.categories[userID]
	if !ok {
		return false, nil
	}
	if _, ok := ns[name]; !ok {
		return false, nil
	}
	delete(ns, name)
	return true, s.saveCategories()
}

// ---------- expenses ----------

func (s *FileStore) Expenses() []models.Expense {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

func (s *FileStore) AppendExpense(e models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = append(s.expenses, e)
	return s.saveExpenses()
}

func (s *FileStore) ReplaceExpenses(list []models.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.expenses = list
	return s.saveExpenses()
}

// ---------- users ----------

func (s *FileStore) Users() []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	return out
}

func (s *FileStore) User(id string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	return u, ok
}

func (s *FileStore) FindUserByEmail(email string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *FileStore) FindUserByUsername(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username = strings.ToLower(strings.TrimSpace(username))
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *FileStore) PutUser(u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[u.ID] = u
	return s.saveUsers()
}

func (s *FileStore) DeleteUser(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, id)
	if err := s.saveUsers(); err != nil {
		return err
	}

	if _, ok := s.categories[id]; ok {
		delete(s.categories, id)
		if err := s.saveCategories(); err != nil {
			return err
		}
	}

	kept := s.expenses[:0]
	removed := false
	for _, e := range s.expenses {
		if e.UserID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	if removed {
		s.expenses = kept
		return s.saveExpenses()
	}
	return nil
}
