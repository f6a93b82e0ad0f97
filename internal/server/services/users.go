// Package services contains server-side business logic. This file implements
// UserService: registration, credential checks, access-token issuance, and
// the superuser-only account administration operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"topicboard/internal/common"
	"topicboard/internal/server/auth"
	"topicboard/internal/server/config"
	"topicboard/internal/server/models"
	"topicboard/internal/server/repositories/repomanager"
)

// UserService provides account-related operations:
// - SignUp: open self-registration
// - Authenticate: verify credentials for the token endpoint
// - IssueAccessToken: mint a signed access token for an account
// - List/Get/Create/Edit/Delete: superuser account administration
type UserService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Authenticate checks an email/password pair against the stored account.
// Unknown email and wrong password both collapse into
// common.ErrorInvalidCredentials so the response does not reveal which
// half failed.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}
	if !auth.VerifyPassword(password, user.HashedPassword) {
		return nil, common.ErrorInvalidCredentials
	}
	return user, nil
}

// SignUp registers a new active, non-privileged account. A taken email
// surfaces as common.ErrorAlreadyExists.
func (s *UserService) SignUp(ctx context.Context, email, password string) (*models.User, error) {
	digest, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		Email:          email,
		HashedPassword: digest,
		IsActive:       true,
	}

	repo := s.repomanager.Users(s.db)
	u, err := repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %v", err)
	}
	return u, nil
}

// IssueAccessToken mints a signed access token for the account. The embedded
// permission level mirrors is_superuser at issuance time.
func (s *UserService) IssueAccessToken(user *models.User) (string, error) {
	permissions := auth.PermissionUser
	if user.IsSuperuser {
		permissions = auth.PermissionAdmin
	}

	token, err := auth.GenerateToken(user.Email, permissions, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// GetByEmail loads the live account record for an authenticated request.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByEmail(ctx, email)
}

// GetByID loads a single account.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.GetByID(ctx, id)
}

// List returns a page of accounts ordered by id.
func (s *UserService) List(ctx context.Context, offset, limit int64) ([]*models.User, error) {
	repo := s.repomanager.Users(s.db)
	return repo.List(ctx, offset, limit)
}

// CreateUserInput is the administrative account creation payload.
type CreateUserInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	IsActive    bool
	IsSuperuser bool
}

// Create registers an account with explicit flags. Unlike SignUp it may
// create inactive or superuser accounts.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*models.User, error) {
	digest, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %v", err)
	}

	user := &models.User{
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		HashedPassword: digest,
		IsActive:       in.IsActive,
		IsSuperuser:    in.IsSuperuser,
	}

	repo := s.repomanager.Users(s.db)
	return repo.Create(ctx, user)
}

// EditUserInput carries partial account updates; nil fields keep the stored
// value.
type EditUserInput struct {
	Email       *string
	Password    *string
	FirstName   *string
	LastName    *string
	IsActive    *bool
	IsSuperuser *bool
}

// Edit applies a partial update to an account. A new password is rehashed
// before storage.
func (s *UserService) Edit(ctx context.Context, id int64, in EditUserInput) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if in.IsActive != nil {
		user.IsActive = *in.IsActive
	}
	if in.IsSuperuser != nil {
		user.IsSuperuser = *in.IsSuperuser
	}
	if in.Password != nil {
		digest, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("error hashing password: %v", err)
		}
		user.HashedPassword = digest
	}

	if err := repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes an account permanently. Topics keep referencing the row,
// so deletion fails while the account still owns topics.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	repo := s.repomanager.Users(s.db)
	return repo.Delete(ctx, id)
}
