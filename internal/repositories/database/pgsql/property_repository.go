package pgsql

import (
	"context"

	"github.com/SscSPs/immobilier_backend/internal/apperrors"
	"github.com/SscSPs/immobilier_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/immobilier_backend/internal/core/ports/repositories"
	"github.com/SscSPs/immobilier_backend/internal/models"
	"github.com/SscSPs/immobilier_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxPropertyRepository struct {
	BaseRepository
}

func newPgxPropertyRepository(pool DBPool) *PgxPropertyRepository {
	return &PgxPropertyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PropertyRepositoryFacade = (*PgxPropertyRepository)(nil)

const propertySelectQuery = `
SELECT
	p.property_id, p.title, p.description, p.price, p.location,
	p.rooms, p.bathrooms, p.area, p.created_at, p.updated_at
FROM properties p
`

func (r *PgxPropertyRepository) getProperties(ctx context.Context, filterQuery string, args ...any) ([]domain.Property, error) {
	rows, err := r.Pool.Query(ctx, propertySelectQuery+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query properties", err)
	}
	defer rows.Close()

	props, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Property])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to collect property rows", err)
	}
	return mapping.ToDomainPropertySlice(props), nil
}

func (r *PgxPropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	props, err := r.getProperties(ctx, `WHERE p.property_id = $1;`, propertyID)
	if err != nil {
		return nil, err
	}
	if len(props) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &props[0], nil
}

func (r *PgxPropertyRepository) FindProperties(ctx context.Context, limit int, offset int) ([]domain.Property, error) {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	return r.getProperties(ctx, `ORDER BY p.created_at, p.property_id LIMIT $1 OFFSET $2;`, limit, offset)
}

func (r *PgxPropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	m := mapping.ToModelProperty(property)
	query := `
		INSERT INTO properties (
			property_id, title, description, price, location,
			rooms, bathrooms, area, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PropertyID, m.Title, m.Description, m.Price, m.Location,
		m.Rooms, m.Bathrooms, m.Area, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewConflictError("property ID " + property.PropertyID + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save property "+property.PropertyID, err)
	}
	return nil
}

func (r *PgxPropertyRepository) UpdateProperty(ctx context.Context, property domain.Property) error {
	m := mapping.ToModelProperty(property)
	query := `
		UPDATE properties
		SET title = $1, description = $2, price = $3, location = $4,
			rooms = $5, bathrooms = $6, area = $7, updated_at = $8
		WHERE property_id = $9;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.Title, m.Description, m.Price, m.Location,
		m.Rooms, m.Bathrooms, m.Area, m.UpdatedAt, m.PropertyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update property "+property.PropertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPropertyRepository) DeleteProperty(ctx context.Context, propertyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM properties WHERE property_id = $1;`, propertyID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete property "+propertyID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
