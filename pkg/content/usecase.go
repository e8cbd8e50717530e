package content

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/dancanmurithi/portfolio/pkg/cache"
)

// Staleness windows per section family. Contact and education change rarely,
// so they keep a longer window.
const (
	sectionTTL = 10 * time.Minute
	contactTTL = 60 * time.Minute
)

var ErrValidation = errors.New("validation failed")

// UseCase resolves what each section ultimately renders. Fetch failures and
// empty sets are absorbed into fallback data, so reads cannot fail.
type UseCase interface {
	Hero() Profile
	Articles(ctx context.Context) []Article
	Certifications(ctx context.Context) []Certification
	Experiences(ctx context.Context) []Experience
	SkillCategories(ctx context.Context) []SkillCategory
	Projects(ctx context.Context) []Project
	Testimonials(ctx context.Context) []Testimonial
	ContactInfo(ctx context.Context) ContactInfo
	Education(ctx context.Context) Education

	SubmitTestimonial(ctx context.Context, t Testimonial) error
}

type service struct {
	repo  Repository
	cache cache.Store
}

// NewService builds the resolver. repo may be nil when no store is
// configured; every read then resolves to fallback data. store may be nil
// to disable caching.
func NewService(repo Repository, store cache.Store) UseCase {
	return &service{repo: repo, cache: store}
}

func (s *service) Hero() Profile { return HeroProfile() }

func (s *service) Articles(ctx context.Context) []Article {
	return cached(ctx, s.cache, "articles", sectionTTL, func(ctx context.Context) []Article {
		live, err := s.fetchArticles(ctx)
		articles := resolveWithFallback(live, err, FallbackArticles())
		for i := range articles {
			if articles[i].Tags == nil {
				articles[i].Tags = []string{}
			}
		}
		return articles
	})
}

func (s *service) Certifications(ctx context.Context) []Certification {
	return cached(ctx, s.cache, "certifications", sectionTTL, func(ctx context.Context) []Certification {
		live, err := s.fetchCertifications(ctx)
		source := resolveWithFallback(live, err, FallbackCertifications())
		// The status filter applies to live and fallback data alike.
		out := make([]Certification, 0, len(source))
		for _, cert := range source {
			status := cert.Status
			if status == "" {
				status = "active"
			}
			switch strings.ToLower(status) {
			case "active", "completed":
				if cert.Skills == nil {
					cert.Skills = []string{}
				}
				out = append(out, cert)
			}
		}
		return out
	})
}

func (s *service) Experiences(ctx context.Context) []Experience {
	return cached(ctx, s.cache, "experiences", sectionTTL, func(ctx context.Context) []Experience {
		live, err := s.fetchExperiences(ctx)
		experiences := resolveWithFallback(live, err, FallbackExperiences())
		for i := range experiences {
			experiences[i] = normalizeExperience(experiences[i])
		}
		return experiences
	})
}

func (s *service) SkillCategories(ctx context.Context) []SkillCategory {
	return cached(ctx, s.cache, "skills", sectionTTL, func(ctx context.Context) []SkillCategory {
		live, err := s.fetchSkillCategories(ctx)
		categories := resolveWithFallback(live, err, FallbackSkillCategories())
		for i := range categories {
			categories[i].Icon = SkillIcon(categories[i].Category, i)
			if categories[i].Skills == nil {
				categories[i].Skills = []string{}
			}
		}
		return categories
	})
}

func (s *service) Projects(ctx context.Context) []Project {
	return cached(ctx, s.cache, "projects", sectionTTL, func(ctx context.Context) []Project {
		live, err := s.fetchProjects(ctx)
		projects := resolveWithFallback(live, err, FallbackProjects())
		for i := range projects {
			projects[i] = decorateProject(projects[i], i)
		}
		return projects
	})
}

func (s *service) Testimonials(ctx context.Context) []Testimonial {
	return cached(ctx, s.cache, "testimonials", sectionTTL, func(ctx context.Context) []Testimonial {
		// Approval is enforced in the query, not here.
		live, err := s.fetchTestimonials(ctx)
		return resolveWithFallback(live, err, FallbackTestimonials())
	})
}

func (s *service) ContactInfo(ctx context.Context) ContactInfo {
	return cached(ctx, s.cache, "contact", contactTTL, func(ctx context.Context) ContactInfo {
		defaults := FallbackContactSettings()
		var settings *ContactSettings
		var socials []SocialLink
		if s.repo != nil {
			var err error
			settings, err = s.repo.ContactSettings(ctx)
			if err != nil {
				// A failed settings fetch also drops the social links,
				// matching the section's all-or-nothing live query.
				settings = nil
			} else {
				socials, _ = s.repo.SocialLinks(ctx)
			}
		}

		info := ContactInfo{Email: defaults.Email, Phone: defaults.Phone, Location: defaults.Location}
		if settings != nil {
			// Field-by-field merge: each value falls back independently.
			info.Email = orString(settings.Email, defaults.Email)
			info.Phone = orString(settings.Phone, defaults.Phone)
			info.Location = orString(settings.Location, defaults.Location)
		}
		info.Channels = buildChannels(info, socials)
		return info
	})
}

func (s *service) Education(ctx context.Context) Education {
	return cached(ctx, s.cache, "education", contactTTL, func(ctx context.Context) Education {
		live, err := s.fetchEducation(ctx)
		// Whole-record fallback, unlike contact info.
		return resolveRecord(live, err, FallbackEducation())
	})
}

func (s *service) SubmitTestimonial(ctx context.Context, t Testimonial) error {
	t.Name = strings.TrimSpace(t.Name)
	t.Content = strings.TrimSpace(t.Content)
	if t.Name == "" || t.Content == "" {
		return ErrValidation
	}
	if t.Rating == 0 {
		t.Rating = 5
	}
	if t.Rating < 1 {
		t.Rating = 1
	}
	if t.Rating > 5 {
		t.Rating = 5
	}
	// Submissions never go live directly.
	t.Status = TestimonialStatusPending
	if s.repo == nil {
		return ErrStoreUnavailable
	}
	return s.repo.CreateTestimonial(ctx, t)
}

// fetch helpers: a missing repository behaves like any other fetch failure.

func (s *service) fetchArticles(ctx context.Context) ([]Article, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.Articles(ctx)
}

func (s *service) fetchCertifications(ctx context.Context) ([]Certification, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.Certifications(ctx)
}

func (s *service) fetchExperiences(ctx context.Context) ([]Experience, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.Experiences(ctx)
}

func (s *service) fetchSkillCategories(ctx context.Context) ([]SkillCategory, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.SkillCategories(ctx)
}

func (s *service) fetchProjects(ctx context.Context) ([]Project, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.Projects(ctx)
}

func (s *service) fetchTestimonials(ctx context.Context) ([]Testimonial, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.ApprovedTestimonials(ctx)
}

func (s *service) fetchEducation(ctx context.Context) (*Education, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}
	return s.repo.LatestEducation(ctx)
}

func normalizeExperience(e Experience) Experience {
	if e.Type == "" {
		e.Type = "Full-time"
	}
	if e.Responsibilities == nil {
		e.Responsibilities = []string{}
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
	if e.Tech == nil {
		e.Tech = []string{}
	}
	return e
}

func decorateProject(p Project, index int) Project {
	p.DisplayStatus = FormatStatus(p.Status)
	p.StatusVariant = StatusVariant(p.Status)
	p.Icon = ProjectIcon(p.Category, index)
	if p.Features == nil {
		p.Features = []string{}
	}
	if p.Highlights == nil {
		p.Highlights = []string{}
	}
	if p.Tech == nil {
		p.Tech = []string{}
	}
	return p
}

var phoneHrefStrip = strings.NewReplacer(" ", "", "(", "", ")", "", "+", "")

func buildChannels(info ContactInfo, socials []SocialLink) []ContactChannel {
	channels := []ContactChannel{
		{Icon: "mail", Label: "Email", Value: info.Email, Href: "mailto:" + info.Email},
		{Icon: "phone", Label: "Phone", Value: info.Phone, Href: "tel:" + phoneHrefStrip.Replace(info.Phone)},
		{Icon: "map-pin", Label: "Location", Value: info.Location},
	}
	for _, social := range socials {
		if strings.EqualFold(social.Platform, "linkedin") && social.URL != "" {
			channels = append(channels, ContactChannel{
				Icon:  "linkedin",
				Label: "LinkedIn",
				Value: "Connect with me",
				Href:  social.URL,
			})
			break
		}
	}
	return channels
}

// cached wraps a section build with the snapshot cache. Cache errors and
// decode failures fall through to a fresh build; the cache is never a
// correctness dependency.
func cached[T any](ctx context.Context, store cache.Store, key string, ttl time.Duration, build func(ctx context.Context) T) T {
	if store != nil {
		if b, ok := store.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(b, &v); err == nil {
				return v
			}
		}
	}
	v := build(ctx)
	if store != nil {
		if b, err := json.Marshal(v); err == nil {
			store.Set(ctx, key, b, ttl)
		}
	}
	return v
}
