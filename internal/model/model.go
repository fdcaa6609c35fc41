package model

import "time"

type Admin struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
}

// programs offered by the institute
const (
	ProgramAMT = "AMT" // Aircraft Maintenance Technology
	ProgramAET = "AET" // Aviation Electronics Technology
)

func ValidProgram(p string) bool {
	return p == ProgramAMT || p == ProgramAET
}

const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusDeclined  = "declined"
	StatusCompleted = "completed"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusCompleted:
		return true
	}
	return false
}

type Appointment struct {
	ID       string `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Program  string `json:"program"`
	// ApptDate is the requested calendar day at UTC midnight.
	ApptDate  time.Time `json:"appt_date"`
	ApptTime  string    `json:"appt_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type NewsItem struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"created_at"`
}

type GalleryPhoto struct {
	ID         string    `json:"id"`
	Path       string    `json:"path"`
	Caption    string    `json:"caption"`
	UploadedAt time.Time `json:"uploaded_at"`
}
