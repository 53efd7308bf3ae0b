package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/deptboard/board-service/internal/domain"
)

// fakeUserRepo is an in-memory UserRepo with switchable failure modes.
type fakeUserRepo struct {
	users  map[string]*domain.User // keyed by ID
	nextID int
	fail   bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*domain.User{}}
}

func (f *fakeUserRepo) GetByEmailOrMatric(_ context.Context, email, matric string) (*domain.User, error) {
	if f.fail {
		return nil, domain.ErrStoreUnavailable(errors.New("fake repo down"))
	}
	for _, u := range f.users {
		if (email != "" && strings.EqualFold(u.Email, email)) || (matric != "" && u.MatricNumber == matric) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if f.fail {
		return nil, domain.ErrStoreUnavailable(errors.New("fake repo down"))
	}
	if u, ok := f.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if f.fail {
		return nil, domain.ErrStoreUnavailable(errors.New("fake repo down"))
	}
	for _, ex := range f.users {
		if strings.EqualFold(ex.Email, u.Email) || ex.MatricNumber == u.MatricNumber {
			return nil, domain.ErrDuplicateUser()
		}
	}
	f.nextID++
	cp := *u
	cp.ID = fmt.Sprintf("user-%d", f.nextID)
	cp.CreatedAt = time.Now()
	f.users[cp.ID] = &cp
	out := cp
	return &out, nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, id string, name, email, phone string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound()
	}
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = email
	}
	if phone != "" {
		u.Phone = phone
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpdateProfileImage(_ context.Context, id string, imageURL string) (*domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound()
	}
	u.ProfileImage = imageURL
	cp := *u
	return &cp, nil
}

// fakeHasher records the plain text so Compare is a string equality check.
type fakeHasher struct {
	failHash bool
}

func (f *fakeHasher) Hash(plain string) (string, error) {
	if f.failHash {
		return "", errors.New("fake hash failure")
	}
	return "hashed:" + plain, nil
}

func (f *fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return errors.New("mismatch")
	}
	return nil
}

// fakeSigner issues "tok:<userID>" and verifies only that shape.
type fakeSigner struct {
	failSign bool
	expired  bool
}

func (f *fakeSigner) Sign(userID string, _ time.Duration) (string, error) {
	if f.failSign {
		return "", errors.New("fake sign failure")
	}
	return "tok:" + userID, nil
}

func (f *fakeSigner) Verify(token string) (*TokenClaims, error) {
	if f.expired {
		return nil, errors.New("token expired")
	}
	id, ok := strings.CutPrefix(token, "tok:")
	if !ok {
		return nil, errors.New("bad token")
	}
	return &TokenClaims{UserID: id, Exp: time.Now().Add(time.Hour)}, nil
}

func newTestService(repo *fakeUserRepo, hasher *fakeHasher, signer *fakeSigner) *Service {
	return NewService(repo, hasher, signer, 7*24*time.Hour, "Computer Science")
}
