package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"venue_tracker/be/biz/dal/repo"
	"venue_tracker/be/biz/model/domain"
	"venue_tracker/be/biz/model/errs"
	"venue_tracker/be/biz/util/encode"
	"venue_tracker/be/biz/util/metrics"
	"venue_tracker/be/biz/util/validate"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	opRegister = "register"
	opLogin    = "login"
)

type TokenIssuer interface {
	Issue(ctx context.Context, userID string) (string, int64, error)
}

type Service struct {
	users  repo.UserRepository
	hasher encode.PasswordHasher
	tokens TokenIssuer
}

func New(users repo.UserRepository, hasher encode.PasswordHasher, tokens TokenIssuer) *Service {
	return &Service{users: users, hasher: hasher, tokens: tokens}
}

// Profile is the outward view of a user. It has no password hash on purpose.
type Profile struct {
	UserID    string
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AuthResult struct {
	Profile
	Token     string
	ExpiresAt int64
}

type registerInput struct {
	Name     string `json:"name" validate:"required,notblank,max=128"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,maxbytes=72"`
}

type passwordInput struct {
	Password string `json:"new_password" validate:"required,min=8,maxbytes=72"`
}

func (s *Service) Register(ctx context.Context, name, email, password string) (*AuthResult, errs.Error) {
	in := registerInput{Name: strings.TrimSpace(name), Email: repo.NormalizeEmail(email), Password: password}
	if err := validate.Struct(&in); err != nil {
		metrics.AuthAttempt(opRegister, "invalid")
		return nil, errs.ParamError.SetDetails(validate.Details(err))
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByEmail err: %v", err)
		return nil, errs.ServerError
	}
	if existing != nil {
		metrics.AuthAttempt(opRegister, "duplicate")
		return nil, errs.EmailDuplicated
	}

	u, err := s.users.Create(ctx, in.Name, in.Email, in.Password, domain.RoleUser)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			// lost the race against a concurrent registration
			metrics.AuthAttempt(opRegister, "duplicate")
			return nil, errs.EmailDuplicated
		}
		hlog.CtxErrorf(ctx, "create user err: %v", err)
		return nil, errs.ServerError
	}

	result, bizErr := s.authenticated(ctx, u)
	if bizErr != nil {
		return nil, bizErr
	}
	metrics.AuthAttempt(opRegister, "success")
	hlog.CtxInfof(ctx, "user registered: %s", u.UserID)
	return result, nil
}

// Login answers InvalidCredentials for both an unknown email and a wrong
// password, after the same amount of hashing work.
func (s *Service) Login(ctx context.Context, email, password string) (*AuthResult, errs.Error) {
	if email == "" || password == "" {
		metrics.AuthAttempt(opLogin, "invalid")
		return nil, errs.ParamError
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByEmail err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		s.hasher.Burn(password)
		metrics.AuthAttempt(opLogin, "rejected")
		hlog.CtxInfof(ctx, "login rejected: unknown email")
		return nil, errs.InvalidCredentials
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		metrics.AuthAttempt(opLogin, "rejected")
		hlog.CtxInfof(ctx, "login rejected: password mismatch for %s", u.UserID)
		return nil, errs.InvalidCredentials
	}

	result, bizErr := s.authenticated(ctx, u)
	if bizErr != nil {
		return nil, bizErr
	}
	metrics.AuthAttempt(opLogin, "success")
	return result, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (*Profile, errs.Error) {
	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByUserID err: %v", err)
		return nil, errs.ServerError
	}
	if u == nil {
		return nil, errs.UserNotExist
	}
	p := toProfile(u)
	return &p, nil
}

// ChangePassword checks the current password before handing the new one to
// the store. It reports whether the stored hash changed.
func (s *Service) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) (bool, errs.Error) {
	in := passwordInput{Password: newPassword}
	if err := validate.Struct(&in); err != nil {
		return false, errs.ParamError.SetDetails(validate.Details(err))
	}

	u, err := s.users.FindByUserID(ctx, userID)
	if err != nil {
		hlog.CtxErrorf(ctx, "FindByUserID err: %v", err)
		return false, errs.ServerError
	}
	if u == nil {
		return false, errs.UserNotExist
	}
	if !s.hasher.Verify(oldPassword, u.PasswordHash) {
		return false, errs.InvalidCredentials
	}

	changed, err := s.users.UpdatePassword(ctx, userID, newPassword)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return false, errs.UserNotExist
		}
		hlog.CtxErrorf(ctx, "UpdatePassword err: %v", err)
		return false, errs.ServerError
	}
	return changed, nil
}

func (s *Service) authenticated(ctx context.Context, u *domain.User) (*AuthResult, errs.Error) {
	token, expAt, err := s.tokens.Issue(ctx, u.UserID)
	if err != nil {
		hlog.CtxErrorf(ctx, "issue token err: %v", err)
		return nil, errs.ServerError
	}
	return &AuthResult{
		Profile:   toProfile(u),
		Token:     token,
		ExpiresAt: expAt,
	}, nil
}

func toProfile(u *domain.User) Profile {
	return Profile{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
