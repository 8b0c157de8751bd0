package auth

import (
	"context"
	"errors"
	"testing"

	"resume-match/internal/domain/user"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byEmail map[string]user.User
	byID    map[uuid.UUID]user.User

	createErr error
	existsErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: map[string]user.User{},
		byID:    map[uuid.UUID]user.User{},
	}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	if m.existsErr != nil {
		return false, m.existsErr
	}
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *mockUserRepo) Update(_ context.Context, u user.User) error {
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func TestRegister_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	u, err := svc.Register(context.Background(), RegisterInput{
		Email:    "  Alice@Example.COM ",
		Password: "changeme123",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "alice@example.com" {
		t.Fatalf("email not normalized: %q", u.Email)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}

	stored, ok := repo.byEmail["alice@example.com"]
	if !ok {
		t.Fatalf("user not persisted")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("changeme123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	svc := NewService(newMockUserRepo())
	cases := []RegisterInput{
		{Email: "", Password: "changeme123"},
		{Email: "a@b.com", Password: "short"},
		{Email: "a@b.com", Password: "        "},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "dup@example.com", Password: "changeme123"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(context.Background(), RegisterInput{Email: "DUP@example.com", Password: "changeme123"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_UniqueRaceReportsDuplicate(t *testing.T) {
	repo := newMockUserRepo()
	repo.createErr = errors.New("duplicate key value violates unique constraint")
	repo.byEmail["race@example.com"] = user.User{ID: uuid.New(), Email: "race@example.com"}

	svc := NewService(&raceRepo{mockUserRepo: repo})
	_, err := svc.Register(context.Background(), RegisterInput{Email: "race@example.com", Password: "changeme123"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

// raceRepo reports the email as free on the first existence check and as
// taken afterwards.
type raceRepo struct {
	*mockUserRepo
	checks int
}

func (r *raceRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.checks++
	if r.checks == 1 {
		return false, nil
	}
	return r.mockUserRepo.ExistsByEmail(ctx, email)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "bob@example.com", Password: "changeme123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{Email: "Bob@Example.com", Password: "changeme123"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.Email != "bob@example.com" {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	svc := NewService(repo)
	if _, err := svc.Register(context.Background(), RegisterInput{Email: "bob@example.com", Password: "changeme123"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "wrongpass1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newMockUserRepo())
	_, err := svc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "changeme123"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
