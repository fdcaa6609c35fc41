package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aviation-institute-api/internal/model"
	"aviation-institute-api/internal/store"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *store.Store) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, store.New(mock)
}

func testAppointment() *model.Appointment {
	return &model.Appointment{
		ID:       "appt-1",
		Fullname: "A",
		Email:    "a@x.com",
		Contact:  "09171234567",
		Program:  model.ProgramAMT,
		ApptDate: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		ApptTime: "10:00",
		Status:   model.StatusPending,
	}
}

func TestCreateAppointment(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(time.Now()))

	a := testAppointment()
	require.NoError(t, s.CreateAppointment(context.Background(), a))
	assert.False(t, a.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAppointmentUniqueViolation(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "appointments_email_date_idx"})

	err := s.CreateAppointment(context.Background(), testAppointment())
	assert.ErrorIs(t, err, store.ErrDuplicateBooking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHasBooking(t *testing.T) {
	mock, s := newMock(t)
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := s.HasBooking(context.Background(), "a@x.com", date)
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))

	exists, err = s.HasBooking(context.Background(), "b@x.com", date)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAppointments(t *testing.T) {
	mock, s := newMock(t)
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "fullname", "email", "contact", "program", "appt_date", "appt_time", "status", "created_at",
	}).
		AddRow("a1", "A", "a@x.com", "0917", "AMT",
			time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), "10:00", "pending", now).
		AddRow("a2", "B", "b@x.com", "0918", "AET",
			time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), "11:00", "approved", now)

	mock.ExpectQuery("FROM appointments ORDER BY created_at DESC").
		WillReturnRows(rows)

	appts, err := s.ListAppointments(context.Background())
	require.NoError(t, err)
	require.Len(t, appts, 2)
	assert.Equal(t, "a1", appts[0].ID)
	assert.Equal(t, model.StatusApproved, appts[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentStatus(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs("approved", "a1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, s.UpdateAppointmentStatus(context.Background(), "a1", "approved"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateAppointmentStatusNotFound(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectExec("UPDATE appointments SET status").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := s.UpdateAppointmentStatus(context.Background(), "missing", "approved")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteAppointment(t *testing.T) {
	mock, s := newMock(t)

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs("a1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, s.DeleteAppointment(context.Background(), "a1"))

	mock.ExpectExec("DELETE FROM appointments").
		WithArgs(pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := s.DeleteAppointment(context.Background(), "a1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
