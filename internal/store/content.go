package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"aviation-institute-api/internal/model"
)

func (s *Store) CreateNews(ctx context.Context, n *model.NewsItem) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO news (id, title, content, image) VALUES ($1,$2,$3,$4)
		 RETURNING created_at`,
		n.ID, n.Title, n.Content, n.Image,
	).Scan(&n.CreatedAt)
	if err != nil {
		return fmt.Errorf("store: insert news: %w", err)
	}
	return nil
}

func (s *Store) ListNews(ctx context.Context) ([]model.NewsItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, content, image, created_at FROM news ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list news: %w", err)
	}
	defer rows.Close()

	var out []model.NewsItem
	for rows.Next() {
		var n model.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Image, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (s *Store) DeleteNews(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM news WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: delete news: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) AddGalleryPhoto(ctx context.Context, p *model.GalleryPhoto) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO gallery (id, path, caption) VALUES ($1,$2,$3)
		 RETURNING uploaded_at`,
		p.ID, p.Path, p.Caption,
	).Scan(&p.UploadedAt)
	if err != nil {
		return fmt.Errorf("store: insert gallery photo: %w", err)
	}
	return nil
}

func (s *Store) ListGallery(ctx context.Context) ([]model.GalleryPhoto, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, path, caption, uploaded_at FROM gallery ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list gallery: %w", err)
	}
	defer rows.Close()

	var out []model.GalleryPhoto
	for rows.Next() {
		var p model.GalleryPhoto
		if err := rows.Scan(&p.ID, &p.Path, &p.Caption, &p.UploadedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *Store) DeleteGalleryPhoto(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM gallery WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: delete gallery photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// About content is a single row; the migration seeds it.
func (s *Store) AboutContent(ctx context.Context) (string, error) {
	var content string
	err := s.db.QueryRow(ctx, `SELECT content FROM about_content WHERE id = 1`).Scan(&content)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("store: select about: %w", err)
	}
	return content, nil
}

func (s *Store) UpdateAboutContent(ctx context.Context, content string) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO about_content (id, content) VALUES (1, $1)
		 ON CONFLICT (id) DO UPDATE SET content = EXCLUDED.content`, content)
	if err != nil {
		return fmt.Errorf("store: update about: %w", err)
	}
	return nil
}
