package services

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Azimiwizard/App-1/entity"
	"github.com/Azimiwizard/App-1/pkg/apperr"
	"github.com/Azimiwizard/App-1/repository"
	"github.com/Azimiwizard/App-1/utils"
)

// AuthProvider is the external identity boundary (Supabase GoTrue in
// deployment). When nil, credentials are kept locally with bcrypt.
type AuthProvider interface {
	SignUp(ctx context.Context, email, password string) (string, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	UpdatePassword(ctx context.Context, authID, newPassword string) error
}

type AuthService struct {
	userRepo  *repository.UserRepository
	provider  AuthProvider
	jwtSecret string
	jwtTTL    time.Duration
	claimCode string
}

func NewAuthService(repo *repository.UserRepository, provider AuthProvider, secret, claimCode string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		provider:  provider,
		jwtSecret: secret,
		jwtTTL:    ttl,
		claimCode: claimCode,
	}
}

type RegisterIn struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	AdminCode string `json:"adminCode"`
}

func (s *AuthService) Register(ctx context.Context, in *RegisterIn) (*entity.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	if count, err := s.userRepo.CountByUsernameExcept(username, 0); err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "check username")
	} else if count > 0 {
		return nil, apperr.New(apperr.Conflict, "username already taken")
	}
	if count, err := s.userRepo.CountByEmailExcept(email, 0); err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "check email")
	} else if count > 0 {
		return nil, apperr.New(apperr.Conflict, "email already registered")
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		IsAdmin:  s.claimCodeMatches(in.AdminCode),
	}

	if s.provider != nil {
		authID, err := s.provider.SignUp(ctx, email, in.Password)
		if err != nil {
			return nil, apperr.Wrap(apperr.Unavailable, err, "auth provider sign-up failed")
		}
		user.AuthID = authID
	} else {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Wrap(apperr.Unavailable, err, "hash password")
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "create user")
	}
	return user, nil
}

// Login verifies credentials and mints a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user *entity.User
	if s.provider != nil {
		authID, err := s.provider.SignIn(ctx, email, password)
		if err != nil {
			return "", nil, apperr.New(apperr.Unauthorized, "invalid credentials")
		}
		user, err = s.userRepo.FindByAuthID(authID)
		if err != nil {
			// Authenticated with the provider but never registered here.
			return "", nil, apperr.New(apperr.NotFound, "user not found, please register first")
		}
	} else {
		u, err := s.userRepo.FindByEmail(email)
		if err != nil {
			return "", nil, apperr.New(apperr.Unauthorized, "invalid credentials")
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			return "", nil, apperr.New(apperr.Unauthorized, "invalid credentials")
		}
		user = u
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.IsAdmin, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.Unavailable, err, "generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.NotFound, "user not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.Unavailable, err, "load user")
	}
	return u, nil
}

type UpdateProfileIn struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, in *UpdateProfileIn) (*entity.User, error) {
	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	updates := map[string]any{}
	if in.Username != "" && in.Username != user.Username {
		if err := validateUsername(in.Username); err != nil {
			return nil, err
		}
		count, err := s.userRepo.CountByUsernameExcept(in.Username, userID)
		if err != nil {
			return nil, apperr.Wrap(apperr.Unavailable, err, "check username")
		}
		if count > 0 {
			return nil, apperr.New(apperr.Conflict, "username already taken")
		}
		updates["username"] = strings.TrimSpace(in.Username)
	}
	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if email != user.Email {
			count, err := s.userRepo.CountByEmailExcept(email, userID)
			if err != nil {
				return nil, apperr.Wrap(apperr.Unavailable, err, "check email")
			}
			if count > 0 {
				return nil, apperr.New(apperr.Conflict, "email already taken")
			}
			updates["email"] = email
		}
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, apperr.Wrap(apperr.Unavailable, err, "update profile")
		}
	}

	if in.Password != "" {
		if err := validatePassword(in.Password); err != nil {
			return nil, err
		}
		if s.provider != nil {
			if err := s.provider.UpdatePassword(ctx, user.AuthID, in.Password); err != nil {
				// Profile fields were saved; report the partial failure.
				log.Printf("provider password update failed for user %d: %v", userID, err)
				return nil, apperr.Wrap(apperr.Unavailable, err, "profile updated but password change failed")
			}
		} else {
			hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return nil, apperr.Wrap(apperr.Unavailable, err, "hash password")
			}
			if err := s.userRepo.Update(userID, map[string]any{"password": string(hashed)}); err != nil {
				return nil, apperr.Wrap(apperr.Unavailable, err, "update password")
			}
		}
	}

	return s.GetProfile(userID)
}

// ClaimAdmin grants the admin flag when the configured claim code matches.
func (s *AuthService) ClaimAdmin(userID uint, code string) error {
	if !s.claimCodeMatches(code) {
		return apperr.New(apperr.Forbidden, "invalid admin code")
	}
	if err := s.userRepo.Update(userID, map[string]any{"is_admin": true}); err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "grant admin")
	}
	return nil
}

// PromoteAll flips the admin flag for every user; gated by the claim code.
func (s *AuthService) PromoteAll(code string) error {
	if !s.claimCodeMatches(code) {
		return apperr.New(apperr.Forbidden, "invalid admin code")
	}
	if err := s.userRepo.PromoteAll(); err != nil {
		return apperr.Wrap(apperr.Unavailable, err, "promote users")
	}
	return nil
}

func (s *AuthService) claimCodeMatches(code string) bool {
	if s.claimCode == "" {
		return false
	}
	// Whitespace inside the code is ignored, as is case.
	normalized := strings.ToLower(strings.Join(strings.Fields(code), ""))
	return normalized == strings.ToLower(s.claimCode)
}
