package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"backend-tracking/internal/domain/pagination"
	domuser "backend-tracking/internal/domain/user"
)

const userColumns = `id, username, full_name, register_date, expired_date, status`

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, full_name, register_date, expired_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, u.Username, u.FullName, u.RegisterDate, u.ExpiredDate, u.Status).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domuser.ErrUsernameExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u *domuser.User) (*domuser.User, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET username = $1, full_name = $2, register_date = $3, expired_date = $4, status = $5
		WHERE id = $6
	`, u.Username, u.FullName, u.RegisterDate, u.ExpiredDate, u.Status, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domuser.ErrUsernameExists
		}
		return nil, fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domuser.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domuser.User, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+userColumns+` FROM users WHERE id = $1
	`, id)

	var u domuser.User
	if err := row.Scan(&u.ID, &u.Username, &u.FullName, &u.RegisterDate, &u.ExpiredDate, &u.Status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}

// Search applies all six optional filters in one statement; a nil
// filter collapses its clause to true. No ORDER BY: the page comes
// back in the store's natural order.
func (r *UserRepository) Search(ctx context.Context, filter domuser.SearchFilter, page pagination.Request) ([]*domuser.User, int64, error) {
	const where = `
		WHERE ($1::varchar IS NULL OR LOWER(username) LIKE LOWER('%' || $1 || '%'))
		  AND ($2::varchar IS NULL OR LOWER(full_name) LIKE LOWER('%' || $2 || '%'))
		  AND ($3::date IS NULL OR register_date >= $3)
		  AND ($4::date IS NULL OR register_date <= $4)
		  AND ($5::date IS NULL OR expired_date >= $5)
		  AND ($6::date IS NULL OR expired_date <= $6)
		  AND ($7::int IS NULL OR status = $7)`

	args := []any{
		filter.Username, filter.FullName,
		filter.RegisterDateFrom, filter.RegisterDateTo,
		filter.ExpiredDateFrom, filter.ExpiredDateTo,
		filter.Status,
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count user search: %w", err)
	}

	rows, err := r.pool.Query(ctx,
		`SELECT `+userColumns+` FROM users`+where+` LIMIT $8 OFFSET $9`,
		append(args, page.Limit(), page.Offset())...)
	if err != nil {
		return nil, 0, fmt.Errorf("search users: %w", err)
	}
	defer rows.Close()

	var users []*domuser.User
	for rows.Next() {
		var u domuser.User
		if err := rows.Scan(&u.ID, &u.Username, &u.FullName, &u.RegisterDate, &u.ExpiredDate, &u.Status); err != nil {
			return nil, 0, err
		}
		users = append(users, &u)
	}
	return users, total, rows.Err()
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check username exists: %w", err)
	}
	return exists, nil
}
