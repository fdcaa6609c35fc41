package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"aviation-institute-api/internal/model"
)

func (s *Store) CreateAdmin(ctx context.Context, a *model.Admin) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO admins (id, username, password_hash) VALUES ($1,$2,$3)`,
		a.ID, a.Username, a.PasswordHash,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("store: insert admin: %w", err)
	}
	return nil
}

func (s *Store) AdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	a := &model.Admin{}
	err := s.db.QueryRow(ctx,
		`SELECT id, username, password_hash, last_login, created_at
		 FROM admins WHERE username = $1`, username,
	).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.LastLogin, &a.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: select admin: %w", err)
	}
	return a, nil
}

func (s *Store) ListAdmins(ctx context.Context) ([]model.Admin, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, username, password_hash, last_login, created_at
		 FROM admins ORDER BY username ASC`)
	if err != nil {
		return nil, fmt.Errorf("store: list admins: %w", err)
	}
	defer rows.Close()

	var out []model.Admin
	for rows.Next() {
		var a model.Admin
		if err := rows.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.LastLogin, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) UpdateAdminPassword(ctx context.Context, id, passwordHash string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE admins SET password_hash = $1 WHERE id = $2`, passwordHash, id)
	if err != nil {
		return fmt.Errorf("store: update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// TouchLastLogin is called only from the successful-login path.
func (s *Store) TouchLastLogin(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx,
		`UPDATE admins SET last_login = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: touch last_login: %w", err)
	}
	return nil
}
