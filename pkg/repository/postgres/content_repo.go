package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dancanmurithi/portfolio/pkg/content"
)

// ContentRepository reads the externally managed portfolio tables with the
// fixed per-section orderings. It owns no schema: the content tables are
// maintained by the admin side of the store.
type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

func (r *ContentRepository) Articles(ctx context.Context) ([]content.Article, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, COALESCE(summary, ''), COALESCE(platform, ''), COALESCE(featured, FALSE),
	published_at, COALESCE(read_time, 0), COALESCE(tags, '{}'),
	COALESCE(url, ''), COALESCE(image_url, ''), created_at
FROM articles
ORDER BY COALESCE(featured, FALSE) DESC, published_at DESC NULLS LAST, created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []content.Article
	for rows.Next() {
		var a content.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Summary, &a.Platform, &a.Featured,
			&a.PublishedAt, &a.ReadTime, &a.Tags, &a.URL, &a.ImageURL, &a.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func (r *ContentRepository) Certifications(ctx context.Context) ([]content.Certification, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, name, issuer, COALESCE(issued_on, ''), COALESCE(status, ''),
	COALESCE(logo_url, ''), COALESCE(verification_url, ''), COALESCE(skills, '{}'),
	COALESCE(order_index, 0), created_at
FROM certifications
ORDER BY order_index ASC NULLS LAST, created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []content.Certification
	for rows.Next() {
		var c content.Certification
		if err := rows.Scan(&c.ID, &c.Name, &c.Issuer, &c.IssuedOn, &c.Status,
			&c.LogoURL, &c.VerificationURL, &c.Skills, &c.OrderIndex, &c.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *ContentRepository) Experiences(ctx context.Context) ([]content.Experience, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, company, position, COALESCE(location, ''), COALESCE(period, ''),
	COALESCE(type, ''), COALESCE(description, ''),
	COALESCE(responsibilities, '{}'), COALESCE(achievements, '{}'), COALESCE(tech, '{}'),
	COALESCE(order_index, 0), created_at
FROM experiences
ORDER BY order_index ASC NULLS LAST, created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []content.Experience
	for rows.Next() {
		var e content.Experience
		if err := rows.Scan(&e.ID, &e.Company, &e.Position, &e.Location, &e.Period,
			&e.Type, &e.Description, &e.Responsibilities, &e.Achievements, &e.Tech,
			&e.OrderIndex, &e.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}

func (r *ContentRepository) SkillCategories(ctx context.Context) ([]content.SkillCategory, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, category, COALESCE(skills, '{}'), COALESCE(order_index, 0)
FROM skills
ORDER BY order_index ASC NULLS LAST
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []content.SkillCategory
	for rows.Next() {
		var sc content.SkillCategory
		if err := rows.Scan(&sc.ID, &sc.Category, &sc.Skills, &sc.OrderIndex); err != nil {
			return nil, err
		}
		res = append(res, sc)
	}
	return res, rows.Err()
}

func (r *ContentRepository) Projects(ctx context.Context) ([]content.Project, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, title, description, COALESCE(category, ''), COALESCE(status, ''),
	COALESCE(demo_url, ''), COALESCE(url, ''), COALESCE(image_url, ''),
	COALESCE(features, '{}'), COALESCE(highlights, '{}'), COALESCE(tech, '{}'), created_at
FROM projects
ORDER BY created_at DESC
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []content.Project
	for rows.Next() {
		var p content.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Status,
			&p.DemoURL, &p.URL, &p.ImageURL, &p.Features, &p.Highlights, &p.Tech, &p.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

func (r *ContentRepository) ApprovedTestimonials(ctx context.Context) ([]content.Testimonial, error) {
	// Approval is a server-side filter: pending entries never leave the store.
	rows, err := r.pool.Query(ctx, `
SELECT id, name, COALESCE(role, ''), COALESCE(company, ''), COALESCE(avatar_url, ''),
	content, COALESCE(rating, 5), status, COALESCE(featured, FALSE),
	COALESCE(order_index, 0), created_at
FROM testimonials
WHERE status = $1
ORDER BY COALESCE(featured, FALSE) DESC, order_index ASC NULLS LAST, created_at DESC
`, content.TestimonialStatusApproved)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []content.Testimonial
	for rows.Next() {
		var t content.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Company, &t.AvatarURL,
			&t.Content, &t.Rating, &t.Status, &t.Featured, &t.OrderIndex, &t.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

func (r *ContentRepository) ContactSettings(ctx context.Context) (*content.ContactSettings, error) {
	row := r.pool.QueryRow(ctx, `
SELECT email, COALESCE(phone, ''), COALESCE(location, '')
FROM contact_settings
LIMIT 1
`)
	var cs content.ContactSettings
	if err := row.Scan(&cs.Email, &cs.Phone, &cs.Location); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// An empty settings table is normal; every field falls back.
			return nil, nil
		}
		return nil, err
	}
	return &cs, nil
}

func (r *ContentRepository) SocialLinks(ctx context.Context) ([]content.SocialLink, error) {
	rows, err := r.pool.Query(ctx, `
SELECT platform, url, COALESCE(icon, ''), COALESCE(is_primary, FALSE), COALESCE(order_index, 0)
FROM social_links
ORDER BY order_index ASC NULLS LAST
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []content.SocialLink
	for rows.Next() {
		var sl content.SocialLink
		if err := rows.Scan(&sl.Platform, &sl.URL, &sl.Icon, &sl.IsPrimary, &sl.OrderIndex); err != nil {
			return nil, err
		}
		res = append(res, sl)
	}
	return res, rows.Err()
}

func (r *ContentRepository) LatestEducation(ctx context.Context) (*content.Education, error) {
	row := r.pool.QueryRow(ctx, `
SELECT degree, institution, COALESCE(location, ''), COALESCE(graduation_date, ''), COALESCE(highlights, '{}')
FROM education
ORDER BY created_at DESC
LIMIT 1
`)
	var e content.Education
	if err := row.Scan(&e.Degree, &e.Institution, &e.Location, &e.GraduationDate, &e.Highlights); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *ContentRepository) CreateTestimonial(ctx context.Context, t content.Testimonial) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO testimonials (id, name, email, role, company, avatar_url, rating, content, status, created_at, updated_at)
VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7, $8, $9, $10, $10)
`, t.ID, t.Name, t.Email, t.Role, t.Company, t.AvatarURL, t.Rating, t.Content, t.Status, t.CreatedAt)
	return err
}
