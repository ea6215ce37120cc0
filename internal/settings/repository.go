package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Get(ctx context.Context, userID uuid.UUID) (*AccountSettings, error)
	Save(ctx context.Context, settings *AccountSettings) error
}

type gormRepository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed settings repository and migrates its
// table.
func NewRepository(db *gorm.DB) (Repository, error) {
	if err := db.AutoMigrate(&AccountSettings{}); err != nil {
		return nil, fmt.Errorf("failed to migrate settings table: %w", err)
	}
	return &gormRepository{db: db}, nil
}

func (r *gormRepository) Get(ctx context.Context, userID uuid.UUID) (*AccountSettings, error) {
	var settings AccountSettings
	err := r.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Defaults apply until the seller saves anything.
		return &AccountSettings{
			UserID:      userID,
			Language:    "en",
			Timezone:    "UTC",
			EmailDigest: true,
			LiveToasts:  true,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *gormRepository) Save(ctx context.Context, settings *AccountSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
