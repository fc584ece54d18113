package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(name, taxID string) *model.Client {
	return &model.Client{
		Name:               name,
		TaxID:              taxID,
		BirthDate:          model.NewDate(1990, time.March, 4),
		Active:             true,
		RegistrationStatus: model.RegistrationIncomplete,
		PasswordHash:       "hash",
	}
}

func TestStoreCRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(testutil.NewTestDB(t))

	cat := &model.Category{Name: "PESSOA_FISICA", Description: "Individuals", Active: true}
	require.NoError(t, repo.Create(ctx, cat))
	require.NotZero(t, cat.ID)

	got, err := repo.Get(ctx, cat.ID)
	require.NoError(t, err)
	assert.Equal(t, "PESSOA_FISICA", got.Name)

	got.Active = false
	got.Benefits = ""
	require.NoError(t, repo.Update(ctx, got))

	reloaded, err := repo.Get(ctx, cat.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Active, "zero values are written on update")

	require.NoError(t, repo.Delete(ctx, cat.ID))
	_, err = repo.Get(ctx, cat.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStoreMissingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository(testutil.NewTestDB(t))

	_, err := repo.Get(ctx, 42)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	err = repo.Update(ctx, &model.Service{ID: 42, Name: "x", Description: "x", Price: 1, Category: model.ServiceDigital})
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, 42), apperr.ErrNotFound)

	exists, err := repo.Exists(ctx, 42)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestContainsFoldEscapesWildcards(t *testing.T) {
	ctx := context.Background()
	repo := NewServiceRepository(testutil.NewTestDB(t))

	for _, name := range []string{"Recarga de Celular", "Pagamento 100%", "Cartao_Pre"} {
		require.NoError(t, repo.Create(ctx, &model.Service{
			Name: name, Description: "d", Price: 1, Category: model.ServiceDigital, Active: true,
		}))
	}

	found, err := repo.SearchByName(ctx, "CELULAR")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Recarga de Celular", found[0].Name)

	found, err = repo.SearchByName(ctx, "%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Pagamento 100%", found[0].Name)

	found, err = repo.SearchByName(ctx, "_")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Cartao_Pre", found[0].Name)
}

func TestClientUniquenessLookups(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(testutil.NewTestDB(t))

	email := "ana@example.com"
	c := newClient("Ana", "12345678901")
	c.Email = &email
	require.NoError(t, repo.Create(ctx, c))

	exists, err := repo.ExistsTaxID(ctx, "12345678901", 0)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsTaxID(ctx, "12345678901", c.ID)
	require.NoError(t, err)
	assert.False(t, exists, "the client itself is excluded")

	exists, err = repo.ExistsEmail(ctx, email, 0)
	require.NoError(t, err)
	assert.True(t, exists)

	byEmail, err := repo.FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, c.ID, byEmail.ID)

	_, err = repo.FindByTaxID(ctx, "00000000000")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestRecordFailedAttemptLocksAtThreshold(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(testutil.NewTestDB(t))

	c := newClient("Ana", "12345678901")
	require.NoError(t, repo.Create(ctx, c))

	for i := 1; i <= 2; i++ {
		got, err := repo.RecordFailedAttempt(ctx, c.ID, 3)
		require.NoError(t, err)
		assert.Equal(t, i, got.FailedAttempts)
		assert.False(t, got.AccountLocked)
	}

	got, err := repo.RecordFailedAttempt(ctx, c.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, got.FailedAttempts)
	assert.True(t, got.AccountLocked)

	ok, err := repo.RecordSuccessfulLogin(ctx, c.ID, time.Now())
	require.NoError(t, err)
	assert.False(t, ok, "a locked account is not reset by a login")

	locked, err := repo.ListLocked(ctx)
	require.NoError(t, err)
	require.Len(t, locked, 1)

	require.NoError(t, repo.Unlock(ctx, c.ID))
	got, err = repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, got.FailedAttempts)
	assert.False(t, got.AccountLocked)

	_, err = repo.RecordFailedAttempt(ctx, 999, 3)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestConcurrentFailedAttemptsAreNotLost(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(testutil.NewTestDB(t))

	c := newClient("Ana", "12345678901")
	require.NoError(t, repo.Create(ctx, c))

	const workers = 8
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := repo.RecordFailedAttempt(ctx, c.ID, 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, workers, got.FailedAttempts)
	assert.True(t, got.AccountLocked)
}

func TestRecordSuccessfulLogin(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(testutil.NewTestDB(t))

	c := newClient("Ana", "12345678901")
	require.NoError(t, repo.Create(ctx, c))
	_, err := repo.RecordFailedAttempt(ctx, c.ID, 5)
	require.NoError(t, err)

	at := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	ok, err := repo.RecordSuccessfulLogin(ctx, c.ID, at)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Zero(t, got.FailedAttempts)
	require.NotNil(t, got.LastLoginAt)
	assert.True(t, at.Equal(*got.LastLoginAt))
}

func TestUpdateProfilePreservesCredentials(t *testing.T) {
	ctx := context.Background()
	repo := NewClientRepository(testutil.NewTestDB(t))

	c := newClient("Ana", "12345678901")
	require.NoError(t, repo.Create(ctx, c))
	_, err := repo.RecordFailedAttempt(ctx, c.ID, 5)
	require.NoError(t, err)

	update := newClient("Ana Maria", "12345678901")
	update.ID = c.ID
	update.PasswordHash = "other"
	require.NoError(t, repo.UpdateProfile(ctx, update, false))

	got, err := repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", got.Name)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, 1, got.FailedAttempts)

	require.NoError(t, repo.UpdateProfile(ctx, update, true))
	got, err = repo.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "other", got.PasswordHash)
	assert.Equal(t, 1, got.FailedAttempts)
}

func TestClientDeleteCascade(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	clients := NewClientRepository(db)
	addresses := NewAddressRepository(db)
	contracts := NewContractRepository(db)
	services := NewServiceRepository(db)
	items := NewItemRepository(db)

	keep := newClient("Bia", "99999999999")
	gone := newClient("Ana", "12345678901")
	require.NoError(t, clients.Create(ctx, keep))
	require.NoError(t, clients.Create(ctx, gone))

	svc := &model.Service{Name: "PIX", Description: "d", Price: 1, Category: model.ServiceFinancial, Active: true}
	require.NoError(t, services.Create(ctx, svc))

	for _, owner := range []uint{keep.ID, gone.ID} {
		require.NoError(t, addresses.Create(ctx, &model.Address{
			Street: "Rua A", Number: "1", City: "Recife", State: "PE", PostalCode: "50000000", ClientID: owner,
		}))
		ct := &model.Contract{StartDate: model.NewDate(2024, 1, 1), Status: model.ContractActive, ClientID: owner}
		require.NoError(t, contracts.Create(ctx, ct))
		require.NoError(t, items.Create(ctx, &model.Item{
			Quantity: 1, UnitValue: 1, FinalValue: 1, ContractID: ct.ID, ServiceID: svc.ID,
		}))
	}

	require.NoError(t, clients.DeleteCascade(ctx, gone.ID))

	n, err := addresses.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = contracts.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
	n, err = items.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = clients.Get(ctx, gone.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.ErrorIs(t, clients.DeleteCascade(ctx, gone.ID), apperr.ErrNotFound)
}

func TestContractDeleteCascade(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewTestDB(t)
	contracts := NewContractRepository(db)
	items := NewItemRepository(db)

	ct := &model.Contract{StartDate: model.NewDate(2024, 1, 1), Status: model.ContractActive, ClientID: 1}
	require.NoError(t, contracts.Create(ctx, ct))
	require.NoError(t, items.Create(ctx, &model.Item{Quantity: 2, UnitValue: 5, FinalValue: 10, ContractID: ct.ID, ServiceID: 1}))

	require.NoError(t, contracts.DeleteCascade(ctx, ct.ID))

	left, err := items.ListByContract(ctx, ct.ID)
	require.NoError(t, err)
	assert.Empty(t, left)
	assert.ErrorIs(t, contracts.DeleteCascade(ctx, ct.ID), apperr.ErrNotFound)
}
