package seller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("seller not found")

// Repository handles seller persistence.
type Repository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Seller, error)
	Create(ctx context.Context, seller *Seller) error
	Update(ctx context.Context, seller *Seller) error
	Delete(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context, approvedOnly bool) ([]Seller, error)
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed seller repository and migrates the
// seller table.
func NewRepository(db *gorm.DB) (Repository, error) {
	if err := db.AutoMigrate(&Seller{}); err != nil {
		return nil, fmt.Errorf("failed to migrate seller table: %w", err)
	}
	return &gormRepository{db: db}, nil
}

func (r *gormRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Seller, error) {
	var seller Seller
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&seller).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

func (r *gormRepository) Create(ctx context.Context, seller *Seller) error {
	return r.db.WithContext(ctx).Create(seller).Error
}

func (r *gormRepository) Update(ctx context.Context, seller *Seller) error {
	return r.db.WithContext(ctx).Save(seller).Error
}

func (r *gormRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&Seller{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) List(ctx context.Context, approvedOnly bool) ([]Seller, error) {
	var sellers []Seller
	q := r.db.WithContext(ctx)
	if approvedOnly {
		q = q.Where("approved = ?", true)
	}
	if err := q.Order("created_at").Find(&sellers).Error; err != nil {
		return nil, err
	}
	return sellers, nil
}
