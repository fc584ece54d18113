// Package repository is the GORM-backed entity access layer. Each entity
// kind gets its own Store; relationships are plain id columns resolved by
// explicit lookups.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Tinaglini/RV-Project/internal/apperr"
	"github.com/Tinaglini/RV-Project/prometheus"
	"gorm.io/gorm"
)

// Predicate narrows a query
type Predicate func(*gorm.DB) *gorm.DB

// Eq matches rows whose column equals value
func Eq(column string, value interface{}) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", value)
	}
}

// ContainsFold matches rows whose text column contains value, ignoring case
func ContainsFold(column, value string) Predicate {
	pattern := "%" + escapeLike(strings.ToLower(value)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER("+column+") LIKE ? ESCAPE '\\'", pattern)
	}
}

// NotID excludes the row with the given id
func NotID(id uint) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("id <> ?", id)
	}
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// Store provides create/read/update/delete and predicate search for one entity kind
type Store[T any] struct {
	db     *gorm.DB
	entity string
}

// NewStore creates a store. entity names the kind in error messages.
func NewStore[T any](db *gorm.DB, entity string) *Store[T] {
	return &Store[T]{db: db, entity: entity}
}

// DB returns the underlying handle bound to ctx
func (s *Store[T]) DB(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx)
}

func (s *Store[T]) notFound() *apperr.Error {
	return apperr.NotFound(s.entity + " not found")
}

func (s *Store[T]) internal(op string, err error) *apperr.Error {
	return apperr.Internal(fmt.Sprintf("failed to %s %s", op, s.entity), err)
}

// Create inserts v
func (s *Store[T]) Create(ctx context.Context, v *T) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	if err := s.DB(ctx).Create(v).Error; err != nil {
		return s.internal("create", err)
	}
	return nil
}

// Get loads the row with the given id
func (s *Store[T]) Get(ctx context.Context, id uint) (*T, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var v T
	if err := s.DB(ctx).First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound()
		}
		return nil, s.internal("load", err)
	}
	return &v, nil
}

// Update writes every column of v except id, created_at and omit.
// It fails with NotFound when no row has v's primary key.
func (s *Store[T]) Update(ctx context.Context, v *T, omit ...string) error {
	defer prometheus.TrackDBOperation("update")(time.Now())

	omitted := append([]string{"id", "created_at"}, omit...)
	result := s.DB(ctx).Model(v).Select("*").Omit(omitted...).Updates(v)
	if result.Error != nil {
		return s.internal("update", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.notFound()
	}
	return nil
}

// Delete removes the row with the given id
func (s *Store[T]) Delete(ctx context.Context, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	result := s.DB(ctx).Delete(new(T), id)
	if result.Error != nil {
		return s.internal("delete", result.Error)
	}
	if result.RowsAffected == 0 {
		return s.notFound()
	}
	return nil
}

// List returns every row ordered by id
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	return s.Find(ctx)
}

// Find returns the rows matching all predicates, ordered by id
func (s *Store[T]) Find(ctx context.Context, preds ...Predicate) ([]T, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	out := make([]T, 0)
	if err := s.apply(s.DB(ctx), preds).Order("id").Find(&out).Error; err != nil {
		return nil, s.internal("search", err)
	}
	return out, nil
}

// First returns the first row matching all predicates
func (s *Store[T]) First(ctx context.Context, preds ...Predicate) (*T, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var v T
	if err := s.apply(s.DB(ctx), preds).Order("id").First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.notFound()
		}
		return nil, s.internal("load", err)
	}
	return &v, nil
}

// Count returns the number of rows matching all predicates
func (s *Store[T]) Count(ctx context.Context, preds ...Predicate) (int64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var n int64
	if err := s.apply(s.DB(ctx).Model(new(T)), preds).Count(&n).Error; err != nil {
		return 0, s.internal("count", err)
	}
	return n, nil
}

// Exists reports whether a row with the given id exists
func (s *Store[T]) Exists(ctx context.Context, id uint) (bool, error) {
	n, err := s.Count(ctx, Eq("id", id))
	return n > 0, err
}

func (s *Store[T]) apply(db *gorm.DB, preds []Predicate) *gorm.DB {
	for _, p := range preds {
		db = p(db)
	}
	return db
}
