package model

import "time"

// ContactSubmission is one contact form entry. Write-only from the
// application's perspective: created once and never read back.
type ContactSubmission struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         *string   `json:"phone"`
	CountryCode   *string   `json:"country_code"`
	Message       string    `json:"message"`
	PreferredDate *string   `json:"preferred_date"`
	PreferredTime *string   `json:"preferred_time"`
	CreatedAt     time.Time `json:"created_at"`
}
