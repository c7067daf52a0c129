package account

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CreateInput carries the fields accepted when creating an account.
// FirstName, LastName and Email are mandatory; the rest are optional.
type CreateInput struct {
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Address     string
	City        string
	State       string
	Country     string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the input, rejects duplicate emails before touching
// storage and persists a new account with a generated id and creation time.
func (s *Service) Create(in CreateInput) (Account, error) {
	if err := validateCreate(in); err != nil {
		return Account{}, err
	}

	if _, err := s.repo.GetByEmail(in.Email); err == nil {
		return Account{}, &DuplicateEmailError{Email: in.Email}
	} else if !errors.Is(err, ErrNotFound) {
		return Account{}, err
	}

	acc := Account{
		ID:          uuid.NewString(),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Address:     in.Address,
		City:        in.City,
		State:       in.State,
		Country:     in.Country,
		CreatedAt:   time.Now().UTC(),
	}

	return s.repo.Create(acc)
}

func (s *Service) GetByID(id string) (Account, error) {
	return s.repo.GetByID(id)
}

// List returns every account, newest first. An empty store yields an empty
// slice, never an error.
func (s *Service) List() ([]Account, error) {
	accounts, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	if accounts == nil {
		accounts = []Account{}
	}
	return accounts, nil
}

// Update merges the supplied fields into the stored account. Fields absent
// from the payload are preserved verbatim; id and creation time never
// change. The store is untouched when validation or the uniqueness re-check
// fails.
func (s *Service) Update(id string, fields UpdateFields) (Account, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Account{}, err
	}

	if err := validateUpdate(fields); err != nil {
		return Account{}, err
	}

	merged := ApplyUpdate(existing, fields)

	// Re-check uniqueness only when the email actually changes; keeping the
	// account's own email is not a collision.
	if merged.Email != existing.Email {
		if _, err := s.repo.GetByEmail(merged.Email); err == nil {
			return Account{}, &DuplicateEmailError{Email: merged.Email}
		} else if !errors.Is(err, ErrNotFound) {
			return Account{}, err
		}
	}

	return s.repo.Update(merged)
}

// Delete removes the account for good. Deleting an unknown id is an error,
// not a no-op.
func (s *Service) Delete(id string) error {
	if _, err := s.repo.GetByID(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
