package model

import "time"

// Work represents one portfolio project.
// This is a pure domain model with no database-specific dependencies or tags.
// Optional columns are pointers so that "not provided" persists as NULL
// rather than an empty string.
type Work struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	Description   *string   `json:"description"`
	ImageURL      string    `json:"image_url"`
	ClientName    *string   `json:"client_name"`
	ClientLogoURL *string   `json:"client_logo_url"`
	ImageList     []string  `json:"image_list"`
	PDFURL        *string   `json:"pdf_url"`
	Team          WorkTeam  `json:"team"`
	CreatedAt     time.Time `json:"created_at"`
}

// WorkTeam is the nested attribution sub-record of a Work.
type WorkTeam struct {
	WebDeveloper *string `json:"web_developer"`
	UIUXDesigner *string `json:"ui_ux_designer"`
	Photographer *string `json:"photographer"`
	Illustrator  *string `json:"illustrator"`
}

// WorkSummary carries the display fields the listing and related-works
// pages request, nothing more.
type WorkSummary struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Categories is the fixed set a Work may belong to.
var Categories = []string{
	"Web Design",
	"Web Development",
	"E-commerce",
	"Branding",
	"Mobile App",
	"UI/UX Design",
}

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}
