package postgres

import (
	"context"

	"healthtracker/internal/domain"
)

// CreateUser inserts a new user.
func (d *DB) CreateUser(ctx context.Context, name string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO users (name) VALUES ($1) RETURNING id, name, created_at",
		name,
	).Scan(&u.ID, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, classify("insert user", err)
	}
	return &u, nil
}

// GetUser retrieves a user by ID.
func (d *DB) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM users WHERE id = $1",
		id,
	).Scan(&u.ID, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, classify("select user", err)
	}
	return &u, nil
}

// GetUserByName retrieves a user by name.
func (d *DB) GetUserByName(ctx context.Context, name string) (*domain.User, error) {
	var u domain.User
	err := d.sql.QueryRowContext(ctx,
		"SELECT id, name, created_at FROM users WHERE name = $1",
		name,
	).Scan(&u.ID, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, classify("select user by name", err)
	}
	return &u, nil
}

// ListUsers returns all users ordered by ID.
func (d *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := d.sql.QueryContext(ctx, "SELECT id, name, created_at FROM users ORDER BY id")
	if err != nil {
		return nil, classify("list users", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Name, &u.CreatedAt); err != nil {
			return nil, classify("scan user", err)
		}
		out = append(out, u)
	}
	return out, classify("list users", rows.Err())
}

// UpdateUser renames a user.
func (d *DB) UpdateUser(ctx context.Context, u domain.User) error {
	res, err := d.sql.ExecContext(ctx, "UPDATE users SET name = $1 WHERE id = $2", u.Name, u.ID)
	return expectOne("update user", res, err)
}

// DeleteUser deletes a user; their entries, goals and plans cascade.
func (d *DB) DeleteUser(ctx context.Context, id int64) error {
	res, err := d.sql.ExecContext(ctx, "DELETE FROM users WHERE id = $1", id)
	return expectOne("delete user", res, err)
}
