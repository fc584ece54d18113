// Package service holds the application rules of each entity kind:
// uniqueness and existence checks, derived fields and defaults.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/identity"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/prometheus"
)

// ClientStore is the persistence ClientService needs
type ClientStore interface {
	Create(ctx context.Context, c *model.Client) error
	Get(ctx context.Context, id uint) (*model.Client, error)
	List(ctx context.Context) ([]model.Client, error)
	UpdateProfile(ctx context.Context, c *model.Client, includePassword bool) error
	DeleteCascade(ctx context.Context, id uint) error
	ExistsTaxID(ctx context.Context, taxID string, excludeID uint) (bool, error)
	ExistsEmail(ctx context.Context, email string, excludeID uint) (bool, error)
	FindByTaxID(ctx context.Context, taxID string) (*model.Client, error)
	FindByEmail(ctx context.Context, email string) (*model.Client, error)
	SearchByName(ctx context.Context, name string) ([]model.Client, error)
	ListByCategory(ctx context.Context, categoryID uint) ([]model.Client, error)
}

// existenceChecker reports whether a referenced row exists
type existenceChecker interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

type ClientService struct {
	clients           ClientStore
	categories        existenceChecker
	identity          *identity.Store
	defaultCategoryID uint
}

// NewClientService creates the client service. defaultCategoryID is assigned
// to clients created without a category; 0 leaves them uncategorized.
func NewClientService(clients ClientStore, categories existenceChecker, ids *identity.Store, defaultCategoryID uint) *ClientService {
	return &ClientService{
		clients:           clients,
		categories:        categories,
		identity:          ids,
		defaultCategoryID: defaultCategoryID,
	}
}

func (s *ClientService) Create(ctx context.Context, in ClientInput) (*model.Client, error) {
	in = normalizeClient(in)
	if err := s.checkUnique(ctx, in, 0); err != nil {
		return nil, err
	}
	if in.BirthDate.IsZero() {
		return nil, fieldError("birth_date", "birth date is required")
	}

	hash, err := s.identity.Register(in.Password)
	if err != nil {
		return nil, err
	}

	categoryID, err := s.resolveCategory(ctx, in.CategoryID)
	if err != nil {
		return nil, err
	}

	client := &model.Client{
		Name:               in.Name,
		TaxID:              in.TaxID,
		Email:              optional(in.Email),
		Phone:              in.Phone,
		BirthDate:          in.BirthDate,
		CategoryID:         categoryID,
		Active:             boolOr(in.Active, true),
		RegistrationStatus: model.RegistrationStatusFor(in.Phone),
		PasswordHash:       hash,
	}
	if err := s.clients.Create(ctx, client); err != nil {
		return nil, err
	}

	prometheus.RegisterCounter.Inc()
	prometheus.RecordEntityOperation("client", "create")
	return client, nil
}

func (s *ClientService) Get(ctx context.Context, id uint) (*model.Client, error) {
	return s.clients.Get(ctx, id)
}

func (s *ClientService) List(ctx context.Context) ([]model.Client, error) {
	return s.clients.List(ctx)
}

// Update replaces the profile of a client. The password is re-hashed only
// when a new one is supplied; the lock state and attempt counter are kept.
func (s *ClientService) Update(ctx context.Context, id uint, in ClientInput) (*model.Client, error) {
	existing, err := s.clients.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in = normalizeClient(in)
	if err := s.checkUnique(ctx, in, id); err != nil {
		return nil, err
	}

	existing.Name = in.Name
	existing.TaxID = in.TaxID
	existing.Email = optional(in.Email)
	existing.Phone = in.Phone
	if !in.BirthDate.IsZero() {
		existing.BirthDate = in.BirthDate
	}
	if in.CategoryID != nil {
		if err := s.checkCategory(ctx, *in.CategoryID); err != nil {
			return nil, err
		}
		existing.CategoryID = in.CategoryID
	}
	existing.Active = boolOr(in.Active, existing.Active)
	existing.RegistrationStatus = model.RegistrationStatusFor(in.Phone)

	withPassword := in.Password != ""
	if withPassword {
		hash, err := s.identity.Register(in.Password)
		if err != nil {
			return nil, err
		}
		existing.PasswordHash = hash
	}

	if err := s.clients.UpdateProfile(ctx, existing, withPassword); err != nil {
		return nil, err
	}

	prometheus.RecordEntityOperation("client", "update")
	return existing, nil
}

// Delete removes the client with its addresses, contracts and their items
func (s *ClientService) Delete(ctx context.Context, id uint) error {
	if err := s.clients.DeleteCascade(ctx, id); err != nil {
		return err
	}
	prometheus.RecordEntityOperation("client", "delete")
	return nil
}

func (s *ClientService) SearchByName(ctx context.Context, name string) ([]model.Client, error) {
	return s.clients.SearchByName(ctx, strings.TrimSpace(name))
}

func (s *ClientService) ListByCategory(ctx context.Context, categoryID uint) ([]model.Client, error) {
	return s.clients.ListByCategory(ctx, categoryID)
}

func (s *ClientService) GetByTaxID(ctx context.Context, taxID string) (*model.Client, error) {
	client, err := s.clients.FindByTaxID(ctx, strings.TrimSpace(taxID))
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.NotFound("client not found with tax id: " + taxID)
	}
	return client, err
}

func (s *ClientService) GetByEmail(ctx context.Context, email string) (*model.Client, error) {
	client, err := s.clients.FindByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, apperr.ErrNotFound) {
		return nil, apperr.NotFound("client not found with email: " + email)
	}
	return client, err
}

// CheckExistence tells whether a tax id or email is already registered
func (s *ClientService) CheckExistence(ctx context.Context, identifier string) (*Existence, error) {
	client, err := s.identity.Resolve(ctx, identifier)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return &Existence{Exists: false}, nil
		}
		return nil, err
	}
	return &Existence{Exists: true, ClientID: client.ID, Name: client.Name}, nil
}

// Login authenticates a client by tax id or email
func (s *ClientService) Login(ctx context.Context, identifier, password string) (*model.Client, error) {
	prometheus.LoginCounter.Inc()

	client, err := s.identity.Authenticate(ctx, identifier, password)
	if err != nil {
		if appErr, ok := apperr.As(err); ok {
			prometheus.RecordAuthError(appErr.Kind.String())
		}
		return nil, err
	}
	return client, nil
}

func (s *ClientService) ChangePassword(ctx context.Context, id uint, current, next string) error {
	return s.identity.ChangePassword(ctx, id, current, next)
}

// Unlock clears the lock state of an account
func (s *ClientService) Unlock(ctx context.Context, id uint) (*model.Client, error) {
	client, err := s.identity.AdminUnlock(ctx, id)
	if err != nil {
		return nil, err
	}
	prometheus.AdminUnlockCounter.Inc()
	return client, nil
}

func (s *ClientService) ListLocked(ctx context.Context) ([]model.Client, error) {
	return s.identity.ListLocked(ctx)
}

func (s *ClientService) checkUnique(ctx context.Context, in ClientInput, excludeID uint) error {
	taken, err := s.clients.ExistsTaxID(ctx, in.TaxID, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Duplicate("tax id already registered: " + in.TaxID)
	}

	if in.Email == "" {
		return nil
	}
	taken, err = s.clients.ExistsEmail(ctx, in.Email, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return apperr.Duplicate("email already registered: " + in.Email)
	}
	return nil
}

func (s *ClientService) resolveCategory(ctx context.Context, requested *uint) (*uint, error) {
	if requested != nil {
		if err := s.checkCategory(ctx, *requested); err != nil {
			return nil, err
		}
		return requested, nil
	}
	if s.defaultCategoryID == 0 {
		return nil, nil
	}
	id := s.defaultCategoryID
	return &id, nil
}

func (s *ClientService) checkCategory(ctx context.Context, id uint) error {
	ok, err := s.categories.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.MissingReference("category not found")
	}
	return nil
}

func normalizeClient(in ClientInput) ClientInput {
	in.Name = strings.TrimSpace(in.Name)
	in.TaxID = strings.TrimSpace(in.TaxID)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	return in
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
