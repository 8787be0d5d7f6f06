package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"venue_tracker/be/biz/model/convert"
	"venue_tracker/be/biz/model/domain"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/model/storage"
	"venue_tracker/be/biz/util/encode"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("record not found")
)

// UserRepository is the credential store. It is the only writer of
// password hashes.
type UserRepository interface {
	Create(ctx context.Context, name, email, password, role string) (*domain.User, error)
	FindByUserID(ctx context.Context, userID string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID, password string) (bool, error)
}

type UserRepositoryGorm struct {
	db     *gorm.DB
	hasher encode.PasswordHasher
}

func NewUserRepositoryGorm(db *gorm.DB, hasher encode.PasswordHasher) *UserRepositoryGorm {
	return &UserRepositoryGorm{db: db, hasher: hasher}
}

// NormalizeEmail is the case policy for the email unique index.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepositoryGorm) Create(ctx context.Context, name, email, password, role string) (*domain.User, error) {
	hash, err := r.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = domain.RoleUser
	}

	m := &storage.UserRecord{
		UserId:       uuid.NewString(),
		Name:         name,
		Email:        NormalizeEmail(email),
		PasswordHash: hash,
		Role:         role,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if errs.IsDuplicatedErr(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return convert.UserRecordToDomain(m), nil
}

func (r *UserRepositoryGorm) FindByUserID(ctx context.Context, userID string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

func (r *UserRepositoryGorm) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("email = ?", NormalizeEmail(email)).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return convert.UserRecordToDomain(&m), nil
}

// UpdatePassword re-hashes only when password does not already verify
// against the stored hash. It reports whether a write happened.
func (r *UserRepositoryGorm) UpdatePassword(ctx context.Context, userID, password string) (bool, error) {
	var m storage.UserRecord
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	if r.hasher.Verify(password, m.PasswordHash) {
		return false, nil
	}

	hash, err := r.hasher.Hash(password)
	if err != nil {
		return false, err
	}
	err = r.db.WithContext(ctx).Model(&m).Update("password_hash", hash).Error
	if err != nil {
		return false, fmt.Errorf("update password: %w", err)
	}
	return true, nil
}
