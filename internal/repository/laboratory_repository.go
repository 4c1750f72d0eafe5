package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lab-booking-service/internal/domain"
	"github.com/spec-kit/lab-booking-service/internal/search"
)

const laboratoryColumns = `seq, id, name, description, location, contact_person, contact_phone,
               is_active, created_by, created_at, updated_at`

const laboratorySearchColumn = "name"

// LaboratoryRepository defines persistence access for laboratories.
type LaboratoryRepository interface {
	Create(ctx context.Context, lab *domain.Laboratory) error
	FindPage(ctx context.Context, query search.Query) ([]domain.Laboratory, int64, error)
	FindList(ctx context.Context, filter search.Filter) ([]domain.Laboratory, error)
	GetByID(ctx context.Context, id string) (*domain.Laboratory, error)
	UpdateOne(ctx context.Context, id string, lab *domain.Laboratory) (int64, error)
	DeleteOne(ctx context.Context, id string) (*domain.Laboratory, error)
}

type laboratoryRepository struct {
	pool *pgxpool.Pool
}

// NewLaboratoryRepository returns a Postgres-backed implementation.
func NewLaboratoryRepository(pool *pgxpool.Pool) LaboratoryRepository {
	return &laboratoryRepository{pool: pool}
}

func (r *laboratoryRepository) Create(ctx context.Context, lab *domain.Laboratory) error {
	const query = `
        INSERT INTO laboratories (id, name, description, location, contact_person, contact_phone,
                                  is_active, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING seq, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		lab.ID,
		lab.Name,
		lab.Description,
		lab.Location,
		lab.ContactPerson,
		lab.ContactPhone,
		lab.IsActive,
		lab.CreatedBy,
	).Scan(&lab.Seq, &lab.CreatedAt, &lab.UpdatedAt)
}

func (r *laboratoryRepository) FindPage(ctx context.Context, query search.Query) ([]domain.Laboratory, int64, error) {
	where, args := filterClause(laboratorySearchColumn, query.Filter)

	listQuery := fmt.Sprintf(`SELECT %s FROM laboratories%s ORDER BY seq ASC LIMIT %d OFFSET %d`,
		laboratoryColumns, where, query.Window.Limit(), query.Window.Offset())

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	labs, err := scanLaboratories(rows)
	if err != nil {
		return nil, 0, err
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM laboratories%s`, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return labs, total, nil
}

func (r *laboratoryRepository) FindList(ctx context.Context, filter search.Filter) ([]domain.Laboratory, error) {
	where, args := filterClause(laboratorySearchColumn, filter)
	query := fmt.Sprintf(`SELECT %s FROM laboratories%s ORDER BY seq ASC`, laboratoryColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanLaboratories(rows)
}

func (r *laboratoryRepository) GetByID(ctx context.Context, id string) (*domain.Laboratory, error) {
	query := fmt.Sprintf(`SELECT %s FROM laboratories WHERE id=$1`, laboratoryColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *laboratoryRepository) UpdateOne(ctx context.Context, id string, lab *domain.Laboratory) (int64, error) {
	const query = `
        UPDATE laboratories SET name=$1, description=$2, location=$3, contact_person=$4,
            contact_phone=$5, is_active=$6, updated_at=NOW()
        WHERE id=$7`

	cmd, err := r.pool.Exec(ctx, query,
		lab.Name,
		lab.Description,
		lab.Location,
		lab.ContactPerson,
		lab.ContactPhone,
		lab.IsActive,
		id,
	)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *laboratoryRepository) DeleteOne(ctx context.Context, id string) (*domain.Laboratory, error) {
	query := fmt.Sprintf(`DELETE FROM laboratories WHERE id=$1 RETURNING %s`, laboratoryColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *laboratoryRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.Laboratory, error) {
	var lab domain.Laboratory
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&lab.Seq,
		&lab.ID,
		&lab.Name,
		&lab.Description,
		&lab.Location,
		&lab.ContactPerson,
		&lab.ContactPhone,
		&lab.IsActive,
		&lab.CreatedBy,
		&lab.CreatedAt,
		&lab.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &lab, nil
}

func scanLaboratories(rows pgx.Rows) ([]domain.Laboratory, error) {
	result := []domain.Laboratory{}
	for rows.Next() {
		var lab domain.Laboratory
		if err := rows.Scan(
			&lab.Seq,
			&lab.ID,
			&lab.Name,
			&lab.Description,
			&lab.Location,
			&lab.ContactPerson,
			&lab.ContactPhone,
			&lab.IsActive,
			&lab.CreatedBy,
			&lab.CreatedAt,
			&lab.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, lab)
	}
	return result, rows.Err()
}
