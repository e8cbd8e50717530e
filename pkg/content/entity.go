package content

import (
	"context"
	"errors"
	"time"
)

// ErrStoreUnavailable is returned by fetches when no content store is
// configured; the resolver treats it like any other fetch failure.
var ErrStoreUnavailable = errors.New("content store unavailable")

// Article is a blog entry shown in the writing section.
type Article struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Summary     string     `json:"summary"`
	Platform    string     `json:"platform,omitempty"`
	Featured    bool       `json:"featured,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	ReadTime    int        `json:"read_time"`
	Tags        []string   `json:"tags"`
	URL         string     `json:"url"`
	ImageURL    string     `json:"image_url"`
	CreatedAt   time.Time  `json:"-"`
}

// Certification is a credential or degree. Only records whose status is
// "active" or "completed" (case-insensitive) are ever rendered.
type Certification struct {
	ID              string    `json:"id,omitempty"`
	Name            string    `json:"name"`
	Issuer          string    `json:"issuer"`
	IssuedOn        string    `json:"issued_on"`
	Status          string    `json:"status"`
	LogoURL         string    `json:"logo_url"`
	VerificationURL string    `json:"verification_url"`
	Skills          []string  `json:"skills"`
	OrderIndex      int       `json:"-"`
	CreatedAt       time.Time `json:"-"`
}

// Experience is one employment entry. Optional fields are normalized at
// resolve time so the payload never carries nulls.
type Experience struct {
	ID               string    `json:"id,omitempty"`
	Company          string    `json:"company"`
	Position         string    `json:"position"`
	Location         string    `json:"location"`
	Period           string    `json:"period"`
	Type             string    `json:"type"`
	Description      string    `json:"description"`
	Responsibilities []string  `json:"responsibilities"`
	Achievements     []string  `json:"achievements"`
	Tech             []string  `json:"tech"`
	OrderIndex       int       `json:"-"`
	CreatedAt        time.Time `json:"-"`
}

// SkillCategory groups skills under one heading. Icon is derived, not stored:
// exact category match over the icon map, else a stable index rotation.
type SkillCategory struct {
	ID         string   `json:"id,omitempty"`
	Category   string   `json:"category"`
	Skills     []string `json:"skills"`
	Icon       string   `json:"icon"`
	OrderIndex int      `json:"-"`
}

// Project is a portfolio entry. DisplayStatus, StatusVariant and Icon are
// derived at resolve time.
type Project struct {
	ID            string    `json:"id,omitempty"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Status        string    `json:"status"`
	DisplayStatus string    `json:"display_status"`
	StatusVariant string    `json:"status_variant"`
	Icon          string    `json:"icon"`
	DemoURL       string    `json:"demo_url"`
	URL           string    `json:"url"`
	ImageURL      string    `json:"image_url,omitempty"`
	Features      []string  `json:"features"`
	Highlights    []string  `json:"highlights"`
	Tech          []string  `json:"tech"`
	CreatedAt     time.Time `json:"-"`
}

// Testimonial statuses. Reads only ever see approved entries; submissions
// start out pending and stay invisible until reviewed.
const (
	TestimonialStatusApproved = "approved"
	TestimonialStatusPending  = "pending"
)

type Testimonial struct {
	ID         string    `json:"id,omitempty"`
	Name       string    `json:"name"`
	Email      string    `json:"-"`
	Role       string    `json:"role"`
	Company    string    `json:"company"`
	AvatarURL  string    `json:"avatar_url"`
	Content    string    `json:"content"`
	Rating     int       `json:"rating"`
	Status     string    `json:"status"`
	Featured   bool      `json:"-"`
	OrderIndex int       `json:"-"`
	CreatedAt  time.Time `json:"-"`
}

// ContactSettings is the single editable contact record in the store.
type ContactSettings struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type SocialLink struct {
	Platform   string `json:"platform"`
	URL        string `json:"url"`
	Icon       string `json:"icon,omitempty"`
	IsPrimary  bool   `json:"is_primary,omitempty"`
	OrderIndex int    `json:"-"`
}

// ContactChannel is one resolved way of reaching out (email, phone,
// location, optionally LinkedIn).
type ContactChannel struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href,omitempty"`
}

// ContactInfo is the merged contact section: each field falls back
// independently, and channels are derived from the merged fields.
type ContactInfo struct {
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Location string           `json:"location"`
	Channels []ContactChannel `json:"channels"`
}

// Education is the single most recent education record.
type Education struct {
	Degree         string   `json:"degree"`
	Institution    string   `json:"institution"`
	Location       string   `json:"location"`
	GraduationDate string   `json:"graduation_date"`
	Highlights     []string `json:"highlights,omitempty"`
}

// Profile is the static hero payload; it has no store backing.
type Profile struct {
	Name     string           `json:"name"`
	Roles    []string         `json:"roles"`
	Tagline  string           `json:"tagline"`
	Channels []ContactChannel `json:"channels"`
}

// Repository is the read port over the externally managed content store,
// plus the single fire-and-forget testimonial insert. Orderings are fixed
// per section and applied by the implementation, not by callers.
type Repository interface {
	Articles(ctx context.Context) ([]Article, error)
	Certifications(ctx context.Context) ([]Certification, error)
	Experiences(ctx context.Context) ([]Experience, error)
	SkillCategories(ctx context.Context) ([]SkillCategory, error)
	Projects(ctx context.Context) ([]Project, error)
	// ApprovedTestimonials restricts to status = approved in the query itself.
	ApprovedTestimonials(ctx context.Context) ([]Testimonial, error)
	ContactSettings(ctx context.Context) (*ContactSettings, error)
	SocialLinks(ctx context.Context) ([]SocialLink, error)
	LatestEducation(ctx context.Context) (*Education, error)

	CreateTestimonial(ctx context.Context, t Testimonial) error
}
