package metrics

import "github.com/prometheus/client_golang/prometheus"

// booking outcomes
const (
	BookingCreated           = "created"
	BookingRejectedSunday    = "rejected_sunday"
	BookingRejectedDuplicate = "rejected_duplicate"
	BookingError             = "error"
)

// Metrics exposes counters for the public booking and admin auth flows.
type Metrics struct {
	bookingsTotal *prometheus.CounterVec
	loginsTotal   *prometheus.CounterVec
	uploadsTotal  *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		bookingsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "institute",
			Subsystem: "booking",
			Name:      "submissions_total",
			Help:      "Appointment submissions by outcome",
		}, []string{"outcome"}),
		loginsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "institute",
			Subsystem: "admin",
			Name:      "logins_total",
			Help:      "Admin login attempts by outcome",
		}, []string{"outcome"}),
		uploadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "institute",
			Subsystem: "content",
			Name:      "uploads_total",
			Help:      "Stored upload files by kind",
		}, []string{"kind"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.bookingsTotal, m.loginsTotal, m.uploadsTotal)
	return m
}

func (m *Metrics) ObserveBooking(outcome string) {
	if m == nil {
		return
	}
	m.bookingsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveLogin(success bool) {
	if m == nil {
		return
	}
	outcome := "failure"
	if success {
		outcome = "success"
	}
	m.loginsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveUpload(kind string) {
	if m == nil {
		return
	}
	m.uploadsTotal.WithLabelValues(kind).Inc()
}
