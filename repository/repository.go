// Package repository is the persistence gateway: one gorm-backed repository
// per entity, all sharing a single *gorm.DB or a transaction.
package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repositories struct {
	db          *gorm.DB
	Users       *UserRepository
	Addresses   *AddressRepository
	Restaurants *RestaurantRepository
	Foods       *FoodRepository
	Carts       *CartRepository
	Orders      *OrderRepository
	Payments    *PaymentRepository
	Reviews     *ReviewRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		db:          db,
		Users:       &UserRepository{db: db},
		Addresses:   &AddressRepository{db: db},
		Restaurants: &RestaurantRepository{db: db},
		Foods:       &FoodRepository{db: db},
		Carts:       &CartRepository{db: db},
		Orders:      &OrderRepository{db: db},
		Payments:    &PaymentRepository{db: db},
		Reviews:     &ReviewRepository{db: db},
	}
}

// Transaction runs fn with repositories bound to one database transaction.
// Returning an error from fn rolls everything back.
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}

// ListQuery drives keyword search, sorting and pagination on list endpoints.
// SortColumn must already be an allow-listed column name.
type ListQuery struct {
	Keyword    string
	SortColumn string
	Desc       bool
	Page       int
	Limit      int
}

func (q ListQuery) offset() int {
	if q.Page < 1 {
		return 0
	}
	return (q.Page - 1) * q.Limit
}

func (q ListQuery) search(db *gorm.DB, column string) *gorm.DB {
	if q.Keyword == "" {
		return db
	}
	return db.Where(clause.Like{Column: clause.Column{Name: column}, Value: "%" + q.Keyword + "%"})
}

func (q ListQuery) page(db *gorm.DB) *gorm.DB {
	if q.SortColumn != "" {
		db = db.Order(clause.OrderByColumn{Column: clause.Column{Name: q.SortColumn}, Desc: q.Desc})
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit).Offset(q.offset())
	}
	return db
}
