package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dealerdesk/backend/internal/apperrors"
	"github.com/dealerdesk/backend/internal/core/domain"
	portsrepo "github.com/dealerdesk/backend/internal/core/ports/repositories"
)

type PgxLocationRepository struct {
	BaseRepository
}

func newPgxLocationRepository(pool *pgxpool.Pool) portsrepo.LocationRepositoryFacade {
	return &PgxLocationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LocationRepositoryFacade = (*PgxLocationRepository)(nil)

const locationColumns = `location_id, name, address, city, phone, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanLocation(row pgx.Row) (domain.Location, error) {
	var l domain.Location
	err := row.Scan(
		&l.LocationID, &l.Name, &l.Address, &l.City, &l.Phone, &l.IsActive,
		&l.CreatedAt, &l.CreatedBy, &l.LastUpdatedAt, &l.LastUpdatedBy,
	)
	return l, err
}

func (r *PgxLocationRepository) SaveLocation(ctx context.Context, location domain.Location) error {
	query := `
		INSERT INTO locations (` + locationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		location.LocationID, location.Name, location.Address, location.City, location.Phone, location.IsActive,
		location.CreatedAt, location.CreatedBy, location.LastUpdatedAt, location.LastUpdatedBy,
	)
	if err := translateError(err); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("location %s: %w", location.LocationID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save location %s: %w", location.LocationID, err)
	}
	return nil
}

func (r *PgxLocationRepository) FindLocationByID(ctx context.Context, locationID string) (*domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE location_id = $1;`
	location, err := scanLocation(r.Pool.QueryRow(ctx, query, locationID))
	if err := translateError(err); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find location %s: %w", locationID, err)
	}
	return &location, nil
}

func (r *PgxLocationRepository) ListLocations(ctx context.Context) ([]domain.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations ORDER BY created_at, location_id;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan location row: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (r *PgxLocationRepository) UpdateLocation(ctx context.Context, location domain.Location) error {
	query := `
		UPDATE locations
		SET name = $2, address = $3, city = $4, phone = $5, is_active = $6, last_updated_at = $7, last_updated_by = $8
		WHERE location_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		location.LocationID, location.Name, location.Address, location.City, location.Phone, location.IsActive,
		location.LastUpdatedAt, location.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update location %s: %w", location.LocationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
