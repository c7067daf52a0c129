package account

import (
	"errors"
	"testing"
	"time"
)

func newTestService() (*Service, *InMemoryRepository) {
	repo := NewInMemoryRepository(nil)
	return NewService(repo), repo
}

func TestCreate_Success(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(CreateInput{
		FirstName:   "John",
		LastName:    "Doe",
		Email:       "john.doe@example.com",
		PhoneNumber: "555-0100",
		City:        "Austin",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if created.ID == "" {
		t.Fatalf("expected a generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected a creation timestamp")
	}
	if created.FirstName != "John" || created.LastName != "Doe" || created.Email != "john.doe@example.com" {
		t.Fatalf("returned entity does not match input: %+v", created)
	}
	if created.PhoneNumber != "555-0100" || created.City != "Austin" {
		t.Fatalf("optional fields not persisted: %+v", created)
	}

	stored, err := service.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get after create failed: %v", err)
	}
	if stored.Email != created.Email {
		t.Fatalf("stored entity mismatch: %+v", stored)
	}
}

func TestCreate_DuplicateEmail(t *testing.T) {
	service, _ := newTestService()

	input := CreateInput{FirstName: "John", LastName: "Doe", Email: "john.doe@example.com"}
	if _, err := service.Create(input); err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err := service.Create(CreateInput{FirstName: "Jane", LastName: "Doe", Email: "john.doe@example.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}

	var dup *DuplicateEmailError
	if !errors.As(err, &dup) || dup.Email != "john.doe@example.com" {
		t.Fatalf("expected error to carry the offending email, got %v", err)
	}

	// no new record may appear after the failed create
	accounts, err := service.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(accounts) != 1 {
		t.Fatalf("expected 1 account after duplicate create, got %d", len(accounts))
	}
}

func TestCreate_InvalidInput(t *testing.T) {
	service, _ := newTestService()

	inputs := []CreateInput{
		{LastName: "Doe", Email: "a@b.co"},
		{FirstName: "John", Email: "a@b.co"},
		{FirstName: "John", LastName: "Doe"},
		{FirstName: "John", LastName: "Doe", Email: "invalid-email"},
	}

	for _, in := range inputs {
		if _, err := service.Create(in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected invalid input error for %+v, got %v", in, err)
		}
	}

	accounts, _ := service.List()
	if len(accounts) != 0 {
		t.Fatalf("failed creates must not write, got %d accounts", len(accounts))
	}
}

func TestGetByID_NotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.GetByID("999999")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.ID != "999999" {
		t.Fatalf("expected error to carry the offending id, got %v", err)
	}
}

func TestList_EmptyAndOrdering(t *testing.T) {
	service, _ := newTestService()

	accounts, err := service.List()
	if err != nil {
		t.Fatalf("list on empty store failed: %v", err)
	}
	if accounts == nil || len(accounts) != 0 {
		t.Fatalf("expected empty slice, got %#v", accounts)
	}

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		if _, err := service.Create(CreateInput{FirstName: "X", LastName: "Y", Email: email}); err != nil {
			t.Fatalf("create %s failed: %v", email, err)
		}
	}

	accounts, err = service.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(accounts) != 3 {
		t.Fatalf("expected 3 accounts, got %d", len(accounts))
	}

	// newest first
	if accounts[0].Email != "c@example.com" || accounts[2].Email != "a@example.com" {
		t.Fatalf("unexpected ordering: %s, %s, %s",
			accounts[0].Email, accounts[1].Email, accounts[2].Email)
	}
	for i := 1; i < len(accounts); i++ {
		if accounts[i].CreatedAt.After(accounts[i-1].CreatedAt) {
			t.Fatalf("accounts not ordered newest first")
		}
	}
}

func TestUpdate_SparsePayload(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(CreateInput{
		FirstName:   "Bob",
		LastName:    "Smith",
		Email:       "bob@example.com",
		PhoneNumber: "555-0100",
		City:        "San Francisco",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := service.Update(created.ID, UpdateFields{
		FirstName: strPtr("Robert"),
		City:      strPtr("Los Angeles"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if updated.FirstName != "Robert" || updated.City != "Los Angeles" {
		t.Fatalf("overrides not applied: %+v", updated)
	}
	if updated.LastName != "Smith" || updated.Email != "bob@example.com" || updated.PhoneNumber != "555-0100" {
		t.Fatalf("unsupplied fields must be preserved: %+v", updated)
	}
	if updated.ID != created.ID || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("id and creation time must be retained: %+v", updated)
	}
}

func TestUpdate_InvalidEmailLeavesStoreUntouched(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(CreateInput{FirstName: "Bob", LastName: "Smith", Email: "bob@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = service.Update(created.ID, UpdateFields{Email: strPtr("invalid-email")})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}

	stored, err := service.GetByID(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Email != "bob@example.com" {
		t.Fatalf("stored entity changed after failed update: %+v", stored)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Update("missing-id", UpdateFields{FirstName: strPtr("X")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestUpdate_DuplicateEmail(t *testing.T) {
	service, _ := newTestService()

	if _, err := service.Create(CreateInput{FirstName: "A", LastName: "A", Email: "a@example.com"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	b, err := service.Create(CreateInput{FirstName: "B", LastName: "B", Email: "b@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	_, err = service.Update(b.ID, UpdateFields{Email: strPtr("a@example.com")})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected duplicate email error, got %v", err)
	}

	stored, _ := service.GetByID(b.ID)
	if stored.Email != "b@example.com" {
		t.Fatalf("failed update must not write: %+v", stored)
	}
}

func TestUpdate_OwnEmailIsNotACollision(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(CreateInput{FirstName: "A", LastName: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := service.Update(created.ID, UpdateFields{
		FirstName: strPtr("Alice"),
		Email:     strPtr("a@example.com"),
	})
	if err != nil {
		t.Fatalf("re-sending the unchanged email must not collide: %v", err)
	}
	if updated.FirstName != "Alice" {
		t.Fatalf("update not applied: %+v", updated)
	}
}

func TestDelete(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(CreateInput{FirstName: "A", LastName: "A", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.Delete(created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := service.GetByID(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	// deleting a nonexistent id is an error, not a no-op
	if err := service.Delete(created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestInMemoryRepository_ListOrdersByCreationTime(t *testing.T) {
	base := time.Date(2024, 11, 8, 12, 0, 0, 0, time.UTC)
	repo := NewInMemoryRepository([]Account{
		{ID: "1", FirstName: "A", LastName: "A", Email: "a@example.com", CreatedAt: base},
		{ID: "2", FirstName: "B", LastName: "B", Email: "b@example.com", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "3", FirstName: "C", LastName: "C", Email: "c@example.com", CreatedAt: base.Add(time.Hour)},
	})

	accounts, err := repo.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	got := []string{accounts[0].ID, accounts[1].ID, accounts[2].ID}
	want := []string{"2", "3", "1"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order %v, want %v", got, want)
		}
	}
}
