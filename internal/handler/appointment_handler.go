package handler

import (
	"errors"
	"net/http"
	"net/mail"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"aviation-institute-api/internal/metrics"
	"aviation-institute-api/internal/model"
	"aviation-institute-api/internal/store"
)

const (
	msgSundayClosed     = "Appointments are only available Monday to Saturday."
	msgDuplicateBooking = "You already have an appointment scheduled for this date."
	msgBookingSaved     = "Appointment submitted successfully!"
	msgBookingError     = "Error saving appointment"
)

const dateLayout = "2006-01-02"

// SubmitAppointment is the public booking endpoint. The client performs the
// same weekday check for fast feedback, but this check is the authoritative
// one.
func (h *Handler) SubmitAppointment(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Fullname string `json:"fullname"`
		Email    string `json:"email"`
		Contact  string `json:"contact"`
		Program  string `json:"program"`
		ApptDate string `json:"appt_date"`
		ApptTime string `json:"appt_time"`
	}
	if err := decodeJSON(r, &req); err != nil {
		message(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Fullname == "" || req.Email == "" || req.Contact == "" ||
		req.Program == "" || req.ApptDate == "" || req.ApptTime == "" {
		message(w, http.StatusBadRequest, "all fields are required")
		return
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		message(w, http.StatusBadRequest, "invalid email address")
		return
	}
	if !model.ValidProgram(req.Program) {
		message(w, http.StatusBadRequest, "unknown program")
		return
	}
	// dates are calendar days pinned to UTC so the weekday rule cannot shift
	// with the caller's time zone
	date, err := time.ParseInLocation(dateLayout, req.ApptDate, time.UTC)
	if err != nil {
		message(w, http.StatusBadRequest, "invalid appointment date")
		return
	}
	if _, err := time.Parse("15:04", req.ApptTime); err != nil {
		message(w, http.StatusBadRequest, "invalid appointment time")
		return
	}

	if date.Weekday() == time.Sunday {
		h.metrics.ObserveBooking(metrics.BookingRejectedSunday)
		message(w, http.StatusOK, msgSundayClosed)
		return
	}

	exists, err := h.store.HasBooking(r.Context(), req.Email, date)
	if err != nil {
		h.log.Error("booking check", "error", err)
		h.metrics.ObserveBooking(metrics.BookingError)
		message(w, http.StatusInternalServerError, msgBookingError)
		return
	}
	if exists {
		h.metrics.ObserveBooking(metrics.BookingRejectedDuplicate)
		message(w, http.StatusOK, msgDuplicateBooking)
		return
	}

	appt := &model.Appointment{
		ID:       uuid.New().String(),
		Fullname: req.Fullname,
		Email:    req.Email,
		Contact:  req.Contact,
		Program:  req.Program,
		ApptDate: date,
		ApptTime: req.ApptTime,
		Status:   model.StatusPending,
	}
	if err := h.store.CreateAppointment(r.Context(), appt); err != nil {
		// unique index caught a race the pre-check missed
		if errors.Is(err, store.ErrDuplicateBooking) {
			h.metrics.ObserveBooking(metrics.BookingRejectedDuplicate)
			message(w, http.StatusOK, msgDuplicateBooking)
			return
		}
		h.log.Error("create appointment", "error", err)
		h.metrics.ObserveBooking(metrics.BookingError)
		message(w, http.StatusInternalServerError, msgBookingError)
		return
	}

	h.metrics.ObserveBooking(metrics.BookingCreated)
	message(w, http.StatusOK, msgBookingSaved)
}

func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	appts, err := h.store.ListAppointments(r.Context())
	if err != nil {
		h.log.Error("list appointments", "error", err)
		writeJSON(w, http.StatusInternalServerError, []model.Appointment{})
		return
	}
	if appts == nil {
		appts = []model.Appointment{}
	}
	writeJSON(w, http.StatusOK, appts)
}

func (h *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req struct {
		Status string `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil || !model.ValidStatus(req.Status) {
		message(w, http.StatusBadRequest, "unknown status")
		return
	}
	if err := h.store.UpdateAppointmentStatus(r.Context(), id, req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(w, http.StatusNotFound, "Appointment not found")
			return
		}
		h.log.Error("update status", "error", err)
		message(w, http.StatusInternalServerError, "Error updating status")
		return
	}
	message(w, http.StatusOK, "Status updated successfully")
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.store.DeleteAppointment(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			message(w, http.StatusNotFound, "Appointment not found")
			return
		}
		h.log.Error("delete appointment", "error", err)
		message(w, http.StatusInternalServerError, "Error deleting appointment")
		return
	}
	message(w, http.StatusOK, "Appointment deleted successfully")
}
