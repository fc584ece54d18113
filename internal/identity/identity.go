// Package identity holds the client credential state machine: password
// registration, authentication with failed-attempt lockout, password change
// and administrative unlock.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/prometheus"
)

const (
	// MinPasswordLength applies to the raw password, before hashing
	MinPasswordLength = 6
	// DefaultLockoutThreshold is the number of consecutive failures that locks an account
	DefaultLockoutThreshold = 5
)

// Repository is the persistence the identity store relies on.
// Lookups return an apperr NotFound error when the client does not exist.
type Repository interface {
	FindByTaxID(ctx context.Context, taxID string) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	Get(ctx context.Context, id uint) (*model.Client, error)
	// RecordFailedAttempt atomically increments the attempt counter, locks the
	// account once the counter reaches threshold and returns the new state.
	RecordFailedAttempt(ctx context.Context, id uint, threshold int) (*model.Client, error)
	// RecordSuccessfulLogin resets the counter and stamps the login time.
	// It reports false when the account is locked and nothing was changed.
	RecordSuccessfulLogin(ctx context.Context, id uint, at time.Time) (bool, error)
	UpdatePasswordHash(ctx context.Context, id uint, hash string) error
	Unlock(ctx context.Context, id uint) error
	ListLocked(ctx context.Context) ([]model.Client, error)
}

// Store enforces the authentication state machine on top of a Repository
type Store struct {
	repo      Repository
	hasher    Hasher
	threshold int
	now       func() time.Time
}

// Option customizes a Store
type Option func(*Store)

// WithLockoutThreshold overrides DefaultLockoutThreshold. Values below 1 are ignored.
func WithLockoutThreshold(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.threshold = n
		}
	}
}

// WithClock sets the time source used for last-login timestamps
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStore creates an identity store
func NewStore(repo Repository, hasher Hasher, opts ...Option) *Store {
	s := &Store{
		repo:      repo,
		hasher:    hasher,
		threshold: DefaultLockoutThreshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Threshold returns the configured lockout threshold
func (s *Store) Threshold() int {
	return s.threshold
}

// ValidatePassword checks the raw password rules, reporting violations on field
func ValidatePassword(field, raw string) error {
	if strings.TrimSpace(raw) == "" {
		return apperr.ValidationFields("password is required", map[string]string{
			field: "password is required",
		})
	}
	if len(raw) < MinPasswordLength {
		msg := fmt.Sprintf("password must have at least %d characters", MinPasswordLength)
		return apperr.ValidationFields(msg, map[string]string{field: msg})
	}
	return nil
}

// Register validates a raw password and returns its salted hash.
// The plaintext is never stored.
func (s *Store) Register(rawPassword string) (string, error) {
	if err := ValidatePassword("password", rawPassword); err != nil {
		return "", err
	}
	hash, err := s.hasher.Hash(rawPassword)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return "", apperr.ValidationFields("password is too long", map[string]string{
				"password": "password is too long",
			})
		}
		return "", apperr.Internal("failed to hash password", err)
	}
	return hash, nil
}

// Authenticate resolves the client by tax id, then email, and checks the password.
// A locked account is rejected before the password is looked at.
func (s *Store) Authenticate(ctx context.Context, identifier, rawPassword string) (*model.Client, error) {
	client, err := s.Resolve(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if client.AccountLocked {
		return nil, apperr.AccountLocked("account locked after too many failed login attempts, contact support")
	}
	if !client.Active {
		return nil, apperr.InactiveAccount("client is inactive, contact support")
	}

	if !s.hasher.Verify(rawPassword, client.PasswordHash) {
		updated, err := s.repo.RecordFailedAttempt(ctx, client.ID, s.threshold)
		if err != nil {
			return nil, fmt.Errorf("record failed attempt: %w", err)
		}
		if updated.AccountLocked {
			prometheus.AccountLockCounter.Inc()
			return nil, apperr.InvalidCredentials(fmt.Sprintf(
				"invalid password, account locked after %d failed attempts", updated.FailedAttempts))
		}
		return nil, apperr.InvalidCredentials("invalid password")
	}

	now := s.now()
	ok, err := s.repo.RecordSuccessfulLogin(ctx, client.ID, now)
	if err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	if !ok {
		// locked by a concurrent failed attempt
		return nil, apperr.AccountLocked("account locked after too many failed login attempts, contact support")
	}

	client.FailedAttempts = 0
	client.LastLoginAt = &now
	return client, nil
}

// Resolve finds a client by tax id first and by email second
func (s *Store) Resolve(ctx context.Context, identifier string) (*model.Client, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, apperr.ValidationFields("identifier is required", map[string]string{
			"identifier": "tax id or email is required",
		})
	}

	client, err := s.repo.FindByTaxID(ctx, identifier)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	client, err = s.repo.FindByEmail(ctx, identifier)
	if err == nil {
		return client, nil
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	return nil, apperr.NotFound("client not found with tax id/email: " + identifier)
}

// ChangePassword replaces the password hash after checking the current password.
// Lock state and attempt counter are left untouched.
func (s *Store) ChangePassword(ctx context.Context, clientID uint, currentPassword, newPassword string) error {
	client, err := s.repo.Get(ctx, clientID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(currentPassword, client.PasswordHash) {
		return apperr.InvalidCredentials("current password is incorrect")
	}

	if err := ValidatePassword("new_password", newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return apperr.ValidationFields("password is too long", map[string]string{
				"new_password": "password is too long",
			})
		}
		return apperr.Internal("failed to hash password", err)
	}

	return s.repo.UpdatePasswordHash(ctx, clientID, hash)
}

// AdminUnlock clears the lock flag and the attempt counter. It is idempotent.
func (s *Store) AdminUnlock(ctx context.Context, clientID uint) (*model.Client, error) {
	if _, err := s.repo.Get(ctx, clientID); err != nil {
		return nil, err
	}
	if err := s.repo.Unlock(ctx, clientID); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, clientID)
}

// ListLocked returns every locked account
func (s *Store) ListLocked(ctx context.Context) ([]model.Client, error) {
	return s.repo.ListLocked(ctx)
}
