// Package services holds the business rules between the HTTP layer and the
// repositories: ownership checks, credential handling, and the todo trash
// lifecycle.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"digidiary/internal/common"
	"digidiary/internal/server/auth"
	"digidiary/internal/server/models"
	"digidiary/internal/server/repositories/repomanager"
)

// ResetTokenValidity bounds how long a forgot-password token stays usable.
const ResetTokenValidity = 15 * time.Minute

type UserService struct {
	repos         repomanager.RepositoryManager
	issuer        auth.TokenIssuer
	tokenValidity time.Duration
}

func NewUserService(repos repomanager.RepositoryManager, issuer auth.TokenIssuer, tokenValidity time.Duration) *UserService {
	return &UserService{repos: repos, issuer: issuer, tokenValidity: tokenValidity}
}

// Register creates an account after checking both unique columns, so a
// duplicate fails before any row is written.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if _, err := s.repos.Users().GetByUsername(ctx, username); err == nil {
		return nil, fmt.Errorf("username is taken: %w", common.ErrAlreadyExists)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	if _, err := s.repos.Users().GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email is taken: %w", common.ErrAlreadyExists)
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	}
	return s.repos.Users().Create(ctx, user)
}

// Login accepts a username or an email address as the identifier.
func (s *UserService) Login(ctx context.Context, identifier, password string) (string, *models.User, error) {
	user, err := s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil, common.ErrUnauthorized
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", nil, common.ErrUnauthorized
	}

	token, err := s.issuer.Issue(user.ID, s.tokenValidity)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}

// ForgotPassword issues a short-lived reset token. It returns an empty token
// for unknown accounts instead of an error, so responses cannot be used to
// probe which identifiers exist.
func (s *UserService) ForgotPassword(ctx context.Context, identifier string) (string, error) {
	user, err := s.lookup(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return s.issuer.Issue(user.ID, ResetTokenValidity)
}

func (s *UserService) lookup(ctx context.Context, identifier string) (*models.User, error) {
	if strings.Contains(identifier, "@") {
		return s.repos.Users().GetByEmail(ctx, identifier)
	}
	return s.repos.Users().GetByUsername(ctx, identifier)
}

func (s *UserService) GetProfile(ctx context.Context, id int64) (*models.User, error) {
	return s.repos.Users().GetByID(ctx, id)
}

// ProfileUpdate carries the optional profile fields; nil means unchanged.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Avatar   *string
	Bio      *string
}

func (s *UserService) UpdateProfile(ctx context.Context, id int64, upd ProfileUpdate) (*models.User, error) {
	user, err := s.repos.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil && *upd.Username != user.Username {
		if _, err := s.repos.Users().GetByUsername(ctx, *upd.Username); err == nil {
			return nil, fmt.Errorf("username is taken: %w", common.ErrAlreadyExists)
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		user.Username = *upd.Username
	}
	if upd.Email != nil && *upd.Email != user.Email {
		if _, err := s.repos.Users().GetByEmail(ctx, *upd.Email); err == nil {
			return nil, fmt.Errorf("email is taken: %w", common.ErrAlreadyExists)
		} else if !errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		user.Email = *upd.Email
	}
	if upd.Avatar != nil {
		user.Avatar = *upd.Avatar
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}

	return s.repos.Users().Update(ctx, user)
}

func (s *UserService) ChangePassword(ctx context.Context, id int64, current, newPassword string) error {
	user, err := s.repos.Users().GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(user.PasswordHash, current) {
		return common.ErrUnauthorized
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.PasswordHash = hash
	_, err = s.repos.Users().Update(ctx, user)
	return err
}

func (s *UserService) Stats(ctx context.Context, id int64) (*models.UserStats, error) {
	user, err := s.repos.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	stats := &models.UserStats{JoinedAt: user.CreatedAt}

	if stats.Entries, err = s.repos.Entries().CountByUser(ctx, id); err != nil {
		return nil, err
	}
	if stats.TodosActive, err = s.repos.Todos().CountActive(ctx, id); err != nil {
		return nil, err
	}
	if stats.TodosCompleted, err = s.repos.Todos().CountCompleted(ctx, id); err != nil {
		return nil, err
	}
	if stats.Tasks, err = s.repos.Tasks().CountByUser(ctx, id); err != nil {
		return nil, err
	}
	if stats.Moods, err = s.repos.Moods().CountByUser(ctx, id); err != nil {
		return nil, err
	}
	if stats.Notes, err = s.repos.Notes().CountByUser(ctx, id); err != nil {
		return nil, err
	}
	return stats, nil
}
