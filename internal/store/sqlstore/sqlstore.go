// Package sqlstore implements store.IStore on gorm. Production runs it on
// postgres; tests run it on an in-memory sqlite database.
package sqlstore

import (
	"context"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"vehicle_rental/internal/models"
	"vehicle_rental/internal/store"
)

// pq reports unique_violation with this SQLSTATE.
const uniqueViolation = "23505"

type Store struct {
	db *gorm.DB
}

// New migrates the schema on db and wraps it.
func New(db *gorm.DB) (*Store, error) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Vehicle{},
		&models.Rental{},
		&models.Supplier{},
		&models.Payment{},
	)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) DB() *gorm.DB { return s.db }

func (s *Store) Users() store.Collection[models.User]         { return collection[models.User]{db: s.db} }
func (s *Store) Customers() store.Collection[models.Customer] { return collection[models.Customer]{db: s.db} }
func (s *Store) Vehicles() store.Collection[models.Vehicle]   { return collection[models.Vehicle]{db: s.db} }
func (s *Store) Rentals() store.Collection[models.Rental]     { return collection[models.Rental]{db: s.db} }
func (s *Store) Suppliers() store.Collection[models.Supplier] { return collection[models.Supplier]{db: s.db} }
func (s *Store) Payments() store.Collection[models.Payment]   { return collection[models.Payment]{db: s.db} }

func (s *Store) Close(context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type collection[T any] struct {
	db *gorm.DB
}

func (c collection[T]) query(ctx context.Context, f store.Filter) *gorm.DB {
	q := c.db.WithContext(ctx).Model(new(T))
	if len(f) > 0 {
		q = q.Where(map[string]interface{}(f))
	}
	return q
}

func (c collection[T]) FindOne(ctx context.Context, f store.Filter) (*T, error) {
	var doc T
	err := c.query(ctx, f).Take(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c collection[T]) Find(ctx context.Context, f store.Filter) ([]T, error) {
	var docs []T
	if err := c.query(ctx, f).Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

func (c collection[T]) Insert(ctx context.Context, doc *T) error {
	err := c.db.WithContext(ctx).Create(doc).Error
	if isDuplicate(err) {
		return store.ErrDuplicate
	}
	return err
}

// UpdateFields and DeleteOne first pin a single row by primary key so that
// a filter matching several rows still touches exactly one.
func (c collection[T]) UpdateFields(ctx context.Context, f store.Filter, fields map[string]any) (int64, error) {
	var doc T
	err := c.query(ctx, f).Take(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	if len(fields) == 0 {
		return 1, nil
	}
	if err := c.db.WithContext(ctx).Model(&doc).Updates(map[string]interface{}(fields)).Error; err != nil {
		if isDuplicate(err) {
			return 0, store.ErrDuplicate
		}
		return 0, err
	}
	return 1, nil
}

func (c collection[T]) DeleteOne(ctx context.Context, f store.Filter) (int64, error) {
	var doc T
	err := c.query(ctx, f).Take(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	res := c.db.WithContext(ctx).Delete(&doc)
	return res.RowsAffected, res.Error
}

func (c collection[T]) DeleteAll(ctx context.Context) (int64, error) {
	res := c.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(new(T))
	return res.RowsAffected, res.Error
}

func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
