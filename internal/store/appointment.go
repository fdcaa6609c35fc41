package store

import (
	"context"
	"fmt"
	"time"

	"aviation-institute-api/internal/model"
)

// CreateAppointment inserts a pending appointment. The unique index on
// (email, appt_date) is the authoritative duplicate guard; when it fires the
// caller gets ErrDuplicateBooking, same as the application-level pre-check.
func (s *Store) CreateAppointment(ctx context.Context, a *model.Appointment) error {
	err := s.db.QueryRow(ctx,
		`INSERT INTO appointments (id, fullname, email, contact, program, appt_date, appt_time, status)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		 RETURNING created_at`,
		a.ID, a.Fullname, a.Email, a.Contact, a.Program, a.ApptDate, a.ApptTime, a.Status,
	).Scan(&a.CreatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicateBooking
	}
	if err != nil {
		return fmt.Errorf("store: insert appointment: %w", err)
	}
	return nil
}

func (s *Store) HasBooking(ctx context.Context, email string, date time.Time) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM appointments WHERE email = $1 AND appt_date = $2)`,
		email, date,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("store: booking check: %w", err)
	}
	return exists, nil
}

func (s *Store) ListAppointments(ctx context.Context) ([]model.Appointment, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, fullname, email, contact, program, appt_date, appt_time, status, created_at
		 FROM appointments ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("store: list appointments: %w", err)
	}
	defer rows.Close()

	var out []model.Appointment
	for rows.Next() {
		var a model.Appointment
		if err := rows.Scan(
			&a.ID, &a.Fullname, &a.Email, &a.Contact, &a.Program,
			&a.ApptDate, &a.ApptTime, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Store) UpdateAppointmentStatus(ctx context.Context, id, status string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE appointments SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("store: update status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteAppointment(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("store: delete appointment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
