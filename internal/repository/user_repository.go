package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/lab-booking-service/internal/domain"
	"github.com/spec-kit/lab-booking-service/internal/search"
)

const userColumns = `seq, id, username, password_hash, nickname, realname, email, phone,
               laboratory_id, role, avatar, is_active, created_at, updated_at`

// The keyword filter searches the display name.
const userSearchColumn = "nickname"

// UserRepository defines persistence access for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindPage(ctx context.Context, query search.Query) ([]domain.User, int64, error)
	FindList(ctx context.Context, filter search.Filter) ([]domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateOne(ctx context.Context, id string, user *domain.User) (int64, error)
	DeleteOne(ctx context.Context, id string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (id, username, password_hash, nickname, realname, email, phone,
                           laboratory_id, role, avatar, is_active)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING seq, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Nickname,
		user.Realname,
		user.Email,
		user.Phone,
		user.LaboratoryID,
		user.Role,
		user.Avatar,
		user.IsActive,
	).Scan(&user.Seq, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) FindPage(ctx context.Context, query search.Query) ([]domain.User, int64, error) {
	where, args := filterClause(userSearchColumn, query.Filter)

	listQuery := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY seq ASC LIMIT %d OFFSET %d`,
		userColumns, where, query.Window.Limit(), query.Window.Offset())

	rows, err := r.pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users, err := scanUsers(rows)
	if err != nil {
		return nil, 0, err
	}

	// The total reflects the filter but not the window.
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM users%s`, where)
	var total int64
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *userRepository) FindList(ctx context.Context, filter search.Filter) ([]domain.User, error) {
	where, args := filterClause(userSearchColumn, filter)
	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY seq ASC`, userColumns, where)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanUsers(rows)
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id=$1`, userColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE username=$1`, userColumns)
	return r.fetchSingle(ctx, query, username)
}

func (r *userRepository) UpdateOne(ctx context.Context, id string, user *domain.User) (int64, error) {
	const query = `
        UPDATE users SET username=$1, password_hash=$2, nickname=$3, realname=$4, email=$5,
            phone=$6, laboratory_id=$7, role=$8, avatar=$9, is_active=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Nickname,
		user.Realname,
		user.Email,
		user.Phone,
		user.LaboratoryID,
		user.Role,
		user.Avatar,
		user.IsActive,
		id,
	)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (r *userRepository) DeleteOne(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`DELETE FROM users WHERE id=$1 RETURNING %s`, userColumns)
	return r.fetchSingle(ctx, query, id)
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.Seq,
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Nickname,
		&user.Realname,
		&user.Email,
		&user.Phone,
		&user.LaboratoryID,
		&user.Role,
		&user.Avatar,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

func scanUsers(rows pgx.Rows) ([]domain.User, error) {
	result := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.Seq,
			&user.ID,
			&user.Username,
			&user.PasswordHash,
			&user.Nickname,
			&user.Realname,
			&user.Email,
			&user.Phone,
			&user.LaboratoryID,
			&user.Role,
			&user.Avatar,
			&user.IsActive,
			&user.CreatedAt,
			&user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, user)
	}
	return result, rows.Err()
}
