package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/internal/model"
	"github.com/Tinaglini/RV-Project/prometheus"
	"gorm.io/gorm"
)

// credentialColumns are written only through the dedicated credential methods
var credentialColumns = []string{"failed_attempts", "account_locked", "last_login_at"}

// ClientRepository stores clients and their credential state
type ClientRepository struct {
	*Store[model.Client]
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{Store: NewStore[model.Client](db, "client")}
}

// FindByTaxID returns the client with the given tax id
func (r *ClientRepository) FindByTaxID(ctx context.Context, taxID string) (*model.Client, error) {
	return r.First(ctx, Eq("tax_id", taxID))
}

// FindByEmail returns the client with the given email
func (r *ClientRepository) FindByEmail(ctx context.Context, email string) (*model.Client, error) {
	return r.First(ctx, Eq("email", email))
}

// ExistsTaxID reports whether another client already uses taxID.
// excludeID skips the client being updated; pass 0 on create.
func (r *ClientRepository) ExistsTaxID(ctx context.Context, taxID string, excludeID uint) (bool, error) {
	n, err := r.Count(ctx, Eq("tax_id", taxID), NotID(excludeID))
	return n > 0, err
}

// ExistsEmail reports whether another client already uses email
func (r *ClientRepository) ExistsEmail(ctx context.Context, email string, excludeID uint) (bool, error) {
	n, err := r.Count(ctx, Eq("email", email), NotID(excludeID))
	return n > 0, err
}

func (r *ClientRepository) SearchByName(ctx context.Context, name string) ([]model.Client, error) {
	return r.Find(ctx, ContainsFold("name", name))
}

func (r *ClientRepository) ListByCategory(ctx context.Context, categoryID uint) ([]model.Client, error) {
	return r.Find(ctx, Eq("category_id", categoryID))
}

// CountByCategory returns how many clients reference the category
func (r *ClientRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	return r.Count(ctx, Eq("category_id", categoryID))
}

// UpdateProfile writes the profile columns of c. The credential state is
// preserved; the password hash is written only when includePassword is set.
func (r *ClientRepository) UpdateProfile(ctx context.Context, c *model.Client, includePassword bool) error {
	omit := append([]string{}, credentialColumns...)
	if !includePassword {
		omit = append(omit, "password_hash")
	}
	return r.Update(ctx, c, omit...)
}

// RecordFailedAttempt increments the attempt counter in a single statement
// so concurrent failures are never lost, locking the account once the new
// counter reaches threshold.
func (r *ClientRepository) RecordFailedAttempt(ctx context.Context, id uint, threshold int) (*model.Client, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.DB(ctx).Model(&model.Client{}).Where("id = ?", id).UpdateColumns(map[string]interface{}{
		"failed_attempts": gorm.Expr("failed_attempts + 1"),
		"account_locked":  gorm.Expr("CASE WHEN failed_attempts + 1 >= ? THEN ? ELSE account_locked END", threshold, true),
	})
	if result.Error != nil {
		return nil, r.internal("record failed attempt for", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, r.notFound()
	}
	return r.Get(ctx, id)
}

// RecordSuccessfulLogin resets the attempt counter and stamps the login
// time, provided the account is still unlocked
func (r *ClientRepository) RecordSuccessfulLogin(ctx context.Context, id uint, at time.Time) (bool, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.DB(ctx).Model(&model.Client{}).
		Where("id = ? AND account_locked = ?", id, false).
		UpdateColumns(map[string]interface{}{
			"failed_attempts": 0,
			"last_login_at":   at,
		})
	if result.Error != nil {
		return false, r.internal("record login for", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ClientRepository) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.DB(ctx).Model(&model.Client{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": hash,
	})
	if result.Error != nil {
		return r.internal("update password of", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}

// Unlock clears the lock flag and the attempt counter
func (r *ClientRepository) Unlock(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	result := r.DB(ctx).Model(&model.Client{}).Where("id = ?", id).Updates(map[string]interface{}{
		"account_locked":  false,
		"failed_attempts": 0,
	})
	if result.Error != nil {
		return r.internal("unlock", result.Error)
	}
	if result.RowsAffected == 0 {
		return r.notFound()
	}
	return nil
}

func (r *ClientRepository) ListLocked(ctx context.Context) ([]model.Client, error) {
	return r.Find(ctx, Eq("account_locked", true))
}

// DeleteCascade removes the client together with its addresses, its
// contracts and the items of those contracts, in one transaction
func (r *ClientRepository) DeleteCascade(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	err := r.DB(ctx).Transaction(func(tx *gorm.DB) error {
		contractIDs := tx.Model(&model.Contract{}).Select("id").Where("client_id = ?", id)
		if err := tx.Where("contract_id IN (?)", contractIDs).Delete(&model.Item{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&model.Contract{}).Error; err != nil {
			return err
		}
		if err := tx.Where("client_id = ?", id).Delete(&model.Address{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&model.Client{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return r.notFound()
		}
		return nil
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return err
		}
		return r.internal("delete", err)
	}
	return nil
}
