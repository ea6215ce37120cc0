package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// DirectoryRow is the flattened seller record used by directory exports.
type DirectoryRow struct {
	BusinessName        string         `db:"business_name"`
	ContactEmail        string         `db:"contact_email"`
	WebsiteLink         string         `db:"website_link"`
	BusinessAddress     string         `db:"business_address"`
	BusinessCategories  pq.StringArray `db:"business_categories"`
	ServicesProvided    pq.StringArray `db:"services_provided"`
	ProductionCountries pq.StringArray `db:"production_countries"`
	Approved            bool           `db:"approved"`
	CreatedAt           time.Time      `db:"created_at"`
}

// Repository reads export projections straight from the sellers table.
// Exports bypass GORM; they are flat read-only scans.
type Repository interface {
	DirectoryRows(ctx context.Context, approvedOnly bool) ([]DirectoryRow, error)
}

type sqlxRepository struct {
	db *sqlx.DB
}

// NewRepository creates the export repository over a sqlx handle.
func NewRepository(db *sqlx.DB) Repository {
	return &sqlxRepository{db: db}
}

func (r *sqlxRepository) DirectoryRows(ctx context.Context, approvedOnly bool) ([]DirectoryRow, error) {
	query := `
		SELECT business_name, contact_email, website_link, business_address,
		       business_categories, services_provided, production_countries,
		       approved, created_at
		FROM sellers`
	if approvedOnly {
		query += ` WHERE approved = true`
	}
	query += ` ORDER BY business_name`

	var rows []DirectoryRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to load directory rows: %w", err)
	}
	return rows, nil
}
