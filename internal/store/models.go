package store

import "time"

type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose this in JSON responses
	CreatedAt    time.Time `json:"created_at"`
}

// Script is one archived generation: the full raw model output plus the
// request labels it was generated for and, later, the outcome evaluation.
type Script struct {
	ID        string    `json:"id"` // UUID
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	Goal      string    `json:"goal"`
	Style     *string   `json:"style"`  // Nullable, joined format labels
	Domain    *string   `json:"domain"` // Nullable, topic or attachment context
	CreatedAt time.Time `json:"created_at"`

	// Evaluation fields, empty until the user reports an outcome.
	Status            *string `json:"status"` // "success" or "weak"
	Views             *string `json:"views"`
	Link              *string `json:"link"`
	Verified          bool    `json:"verified"`
	RetentionAnalysis *string `json:"retention_analysis"`
}

// SuccessPattern is a stylistic template extracted from a video the model
// verified as high-performing. Append-only.
type SuccessPattern struct {
	ID                  string    `json:"id"` // UUID
	UserID              int64     `json:"user_id"`
	Type                string    `json:"type"`
	HookStyle           string    `json:"hook_style"`
	Structure           string    `json:"structure"`
	Pacing              string    `json:"pacing"`
	PersuasionTechnique string    `json:"persuasion_technique"`
	VerifiedLink        *string   `json:"verified_link"`
	CreatedAt           time.Time `json:"created_at"`
}

// StyleNote is one free-text preference the user taught the system.
// Append-only.
type StyleNote struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"created_at"`
}
