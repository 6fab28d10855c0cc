package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"blogpress/internal/entity"
	"blogpress/internal/repo/persistent"
	"blogpress/pkg/logger"
	"blogpress/pkg/password"
	"blogpress/pkg/session"

	"github.com/go-playground/validator/v10"
)

type AuthUseCase interface {
	Signup(ctx context.Context, name, email, rawPassword string) (*entity.Admin, error)
	// Login fails with entity.ErrInvalidCredentials for both an unknown email
	// and a wrong password.
	Login(ctx context.Context, email, rawPassword string) (*entity.Admin, string, error)
	// ResolveSession returns entity.ErrUnauthorized when the token is empty,
	// malformed or names an admin that no longer exists.
	ResolveSession(ctx context.Context, token string) (*entity.Admin, error)
}

type authUseCase struct {
	adminRepo persistent.AdminRepository
	codec     session.Codec
	validate  *validator.Validate
	logger    *logger.Logger

	dummyOnce sync.Once
	dummyHash string
}

func NewAuthUseCase(adminRepo persistent.AdminRepository, codec session.Codec, logger *logger.Logger) AuthUseCase {
	return &authUseCase{
		adminRepo: adminRepo,
		codec:     codec,
		validate:  newValidator(),
		logger:    logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (uc *authUseCase) Signup(ctx context.Context, name, email, rawPassword string) (*entity.Admin, error) {
	in := signupInput{
		Name:     strings.TrimSpace(name),
		Email:    normalizeEmail(email),
		Password: rawPassword,
	}
	if err := uc.validate.Struct(in); err != nil {
		return nil, validationError(err)
	}

	if _, err := uc.adminRepo.GetByEmail(ctx, in.Email); err == nil {
		return nil, entity.ErrDuplicateEmail
	} else if !errors.Is(err, entity.ErrNotFound) {
		uc.logger.Error("Failed to look up admin %s: %v", in.Email, err)
		return nil, fmt.Errorf("look up admin: %w", err)
	}

	hashed, err := password.Hash(in.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &entity.Admin{
		Name:     in.Name,
		Email:    in.Email,
		Password: hashed,
	}
	if err := uc.adminRepo.Create(ctx, admin); err != nil {
		if errors.Is(err, entity.ErrDuplicateEmail) {
			return nil, err
		}
		uc.logger.Error("Failed to create admin: %v", err)
		return nil, fmt.Errorf("create admin: %w", err)
	}

	uc.logger.Info("Admin %s signed up", admin.ID)
	admin.Password = ""
	return admin, nil
}

func (uc *authUseCase) Login(ctx context.Context, email, rawPassword string) (*entity.Admin, string, error) {
	admin, err := uc.adminRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !errors.Is(err, entity.ErrNotFound) {
			uc.logger.Error("Failed to look up admin: %v", err)
			return nil, "", fmt.Errorf("look up admin: %w", err)
		}
		// Spend the same bcrypt time as a real comparison.
		password.Verify(rawPassword, uc.unknownAdminHash())
		return nil, "", entity.ErrInvalidCredentials
	}

	if !password.Verify(rawPassword, admin.Password) {
		return nil, "", entity.ErrInvalidCredentials
	}

	token, err := uc.codec.Encode(admin.ID)
	if err != nil {
		uc.logger.Error("Failed to issue session: %v", err)
		return nil, "", fmt.Errorf("issue session: %w", err)
	}

	admin.Password = ""
	return admin, token, nil
}

func (uc *authUseCase) unknownAdminHash() string {
	uc.dummyOnce.Do(func() {
		hashed, err := password.Hash("unknown-admin-placeholder")
		if err != nil {
			uc.logger.Warn("Failed to prepare placeholder hash: %v", err)
			return
		}
		uc.dummyHash = hashed
	})
	return uc.dummyHash
}

func (uc *authUseCase) ResolveSession(ctx context.Context, token string) (*entity.Admin, error) {
	if token == "" {
		return nil, entity.ErrUnauthorized
	}

	adminID, err := uc.codec.Decode(token)
	if err != nil {
		return nil, entity.ErrUnauthorized
	}

	admin, err := uc.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrUnauthorized
		}
		uc.logger.Error("Failed to resolve session: %v", err)
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	return admin, nil
}
