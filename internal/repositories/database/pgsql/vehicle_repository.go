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

type PgxVehicleRepository struct {
	BaseRepository
}

func newPgxVehicleRepository(pool *pgxpool.Pool) portsrepo.VehicleRepositoryFacade {
	return &PgxVehicleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.VehicleRepositoryFacade = (*PgxVehicleRepository)(nil)

const vehicleColumns = `vehicle_id, vin, make, model, model_year, price, status, location_id, created_at, created_by, last_updated_at, last_updated_by`

func scanVehicle(row pgx.Row) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(
		&v.VehicleID, &v.VIN, &v.Make, &v.Model, &v.ModelYear,
		&v.Price, &v.Status, &v.LocationID,
		&v.CreatedAt, &v.CreatedBy, &v.LastUpdatedAt, &v.LastUpdatedBy,
	)
	return v, err
}

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		vehicle.VehicleID, vehicle.VIN, vehicle.Make, vehicle.Model, vehicle.ModelYear,
		vehicle.Price, vehicle.Status, vehicle.LocationID,
		vehicle.CreatedAt, vehicle.CreatedBy, vehicle.LastUpdatedAt, vehicle.LastUpdatedBy,
	)
	if err := translateError(err); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return fmt.Errorf("vehicle %s: %w", vehicle.VehicleID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save vehicle %s: %w", vehicle.VehicleID, err)
	}
	return nil
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vehicle_id = $1;`
	vehicle, err := scanVehicle(r.Pool.QueryRow(ctx, query, vehicleID))
	if err := translateError(err); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find vehicle %s: %w", vehicleID, err)
	}
	return &vehicle, nil
}

func (r *PgxVehicleRepository) ListVehicles(ctx context.Context, scope domain.BranchScope, limit, offset int) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles`
	var args []any
	if !scope.IsAll() {
		args = append(args, string(scope))
		query += ` WHERE location_id = $1`
	}

	args = append(args, offset)
	query += fmt.Sprintf(" ORDER BY created_at, vehicle_id OFFSET $%d", len(args))
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		UPDATE vehicles
		SET price = $2, status = $3, location_id = $4, last_updated_at = $5, last_updated_by = $6
		WHERE vehicle_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		vehicle.VehicleID, vehicle.Price, vehicle.Status, vehicle.LocationID,
		vehicle.LastUpdatedAt, vehicle.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update vehicle %s: %w", vehicle.VehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
