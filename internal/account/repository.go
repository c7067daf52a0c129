package account

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Repository defines persistence behaviour for customer accounts. Any
// backing store satisfies it as long as email uniqueness and identifier
// stability hold.
type Repository interface {
	Create(acc Account) (Account, error)
	GetByID(id string) (Account, error)
	GetByEmail(email string) (Account, error)
	List() ([]Account, error)
	Update(acc Account) (Account, error)
	Delete(id string) error
}

// InMemoryRepository keeps accounts in a slice guarded by a mutex. It is
// used by tests and as the wiring fallback when no database is configured.
// It enforces the same email uniqueness rule the database constraint does.
type InMemoryRepository struct {
	mu       sync.RWMutex
	accounts []Account
}

func NewInMemoryRepository(seed []Account) *InMemoryRepository {
	repo := &InMemoryRepository{accounts: make([]Account, 0, len(seed))}
	repo.accounts = append(repo.accounts, seed...)
	return repo
}

func (r *InMemoryRepository) Create(acc Account) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.Email == acc.Email {
			return Account{}, &DuplicateEmailError{Email: acc.Email}
		}
	}

	if acc.ID == "" {
		acc.ID = uuid.NewString()
	}
	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now().UTC()
	}

	r.accounts = append(r.accounts, acc)
	return acc, nil
}

func (r *InMemoryRepository) GetByID(id string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, acc := range r.accounts {
		if acc.ID == id {
			return acc, nil
		}
	}

	return Account{}, &NotFoundError{ID: id}
}

func (r *InMemoryRepository) GetByEmail(email string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, acc := range r.accounts {
		if acc.Email == email {
			return acc, nil
		}
	}

	return Account{}, ErrNotFound
}

// List returns all accounts ordered by creation time, most recent first.
// Equal timestamps fall back to insertion order, newest first.
func (r *InMemoryRepository) List() ([]Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	accounts := make([]Account, 0, len(r.accounts))
	for i := len(r.accounts) - 1; i >= 0; i-- {
		accounts = append(accounts, r.accounts[i])
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		return accounts[i].CreatedAt.After(accounts[j].CreatedAt)
	})

	return accounts, nil
}

func (r *InMemoryRepository) Update(acc Account) (Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.accounts {
		if existing.ID != acc.ID && existing.Email == acc.Email {
			return Account{}, &DuplicateEmailError{Email: acc.Email}
		}
	}

	for i, existing := range r.accounts {
		if existing.ID == acc.ID {
			r.accounts[i] = acc
			return acc, nil
		}
	}

	return Account{}, &NotFoundError{ID: acc.ID}
}

func (r *InMemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, acc := range r.accounts {
		if acc.ID == id {
			r.accounts = append(r.accounts[:i], r.accounts[i+1:]...)
			return nil
		}
	}

	return &NotFoundError{ID: id}
}
