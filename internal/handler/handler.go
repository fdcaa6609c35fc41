package handler

import (
	"context"
	"time"

	"aviation-institute-api/internal/logging"
	"aviation-institute-api/internal/metrics"
	"aviation-institute-api/internal/model"
	"aviation-institute-api/internal/session"
	"aviation-institute-api/internal/upload"
)

// Store is the persistence surface the handlers depend on. *store.Store
// implements it; tests use an in-memory fake.
type Store interface {
	CreateAdmin(ctx context.Context, a *model.Admin) error
	AdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	ListAdmins(ctx context.Context) ([]model.Admin, error)
	UpdateAdminPassword(ctx context.Context, id, passwordHash string) error
	TouchLastLogin(ctx context.Context, id string) error

	CreateAppointment(ctx context.Context, a *model.Appointment) error
	HasBooking(ctx context.Context, email string, date time.Time) (bool, error)
	ListAppointments(ctx context.Context) ([]model.Appointment, error)
	UpdateAppointmentStatus(ctx context.Context, id, status string) error
	DeleteAppointment(ctx context.Context, id string) error

	CreateNews(ctx context.Context, n *model.NewsItem) error
	ListNews(ctx context.Context) ([]model.NewsItem, error)
	DeleteNews(ctx context.Context, id string) error

	AddGalleryPhoto(ctx context.Context, p *model.GalleryPhoto) error
	ListGallery(ctx context.Context) ([]model.GalleryPhoto, error)
	DeleteGalleryPhoto(ctx context.Context, id string) error

	AboutContent(ctx context.Context) (string, error)
	UpdateAboutContent(ctx context.Context, content string) error
}

type Handler struct {
	store    Store
	sessions session.Store
	cookies  *session.Codec
	files    upload.Saver
	log      *logging.Logger
	metrics  *metrics.Metrics
}

func New(st Store, sessions session.Store, cookies *session.Codec, files upload.Saver, log *logging.Logger, m *metrics.Metrics) *Handler {
	if log == nil {
		log = logging.Default()
	}
	return &Handler{
		store:    st,
		sessions: sessions,
		cookies:  cookies,
		files:    files,
		log:      log,
		metrics:  m,
	}
}
