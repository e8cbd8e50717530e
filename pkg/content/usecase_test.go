package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancanmurithi/portfolio/pkg/cache"
)

type fakeRepo struct {
	articles        []Article
	articlesErr     error
	certs           []Certification
	certsErr        error
	experiences     []Experience
	experiencesErr  error
	skills          []SkillCategory
	skillsErr       error
	projects        []Project
	projectsErr     error
	testimonials    []Testimonial
	testimonialsErr error
	settings        *ContactSettings
	settingsErr     error
	socials         []SocialLink
	socialsErr      error
	education       *Education
	educationErr    error

	created   []Testimonial
	createErr error
	calls     map[string]int
}

func (f *fakeRepo) count(name string) {
	if f.calls == nil {
		f.calls = map[string]int{}
	}
	f.calls[name]++
}

func (f *fakeRepo) Articles(context.Context) ([]Article, error) {
	f.count("articles")
	return f.articles, f.articlesErr
}

func (f *fakeRepo) Certifications(context.Context) ([]Certification, error) {
	f.count("certifications")
	return f.certs, f.certsErr
}

func (f *fakeRepo) Experiences(context.Context) ([]Experience, error) {
	f.count("experiences")
	return f.experiences, f.experiencesErr
}

func (f *fakeRepo) SkillCategories(context.Context) ([]SkillCategory, error) {
	f.count("skills")
	return f.skills, f.skillsErr
}

func (f *fakeRepo) Projects(context.Context) ([]Project, error) {
	f.count("projects")
	return f.projects, f.projectsErr
}

func (f *fakeRepo) ApprovedTestimonials(context.Context) ([]Testimonial, error) {
	f.count("testimonials")
	return f.testimonials, f.testimonialsErr
}

func (f *fakeRepo) ContactSettings(context.Context) (*ContactSettings, error) {
	f.count("settings")
	return f.settings, f.settingsErr
}

func (f *fakeRepo) SocialLinks(context.Context) ([]SocialLink, error) {
	f.count("socials")
	return f.socials, f.socialsErr
}

func (f *fakeRepo) LatestEducation(context.Context) (*Education, error) {
	f.count("education")
	return f.education, f.educationErr
}

func (f *fakeRepo) CreateTestimonial(_ context.Context, t Testimonial) error {
	f.count("create")
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, t)
	return nil
}

func newTestService(repo Repository) UseCase {
	return NewService(repo, nil)
}

func TestArticlesFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("fetch error resolves to fallback", func(t *testing.T) {
		svc := newTestService(&fakeRepo{articlesErr: errors.New("store down")})
		got := svc.Articles(ctx)
		assert.Equal(t, FallbackArticles(), got)
	})

	t.Run("empty live set resolves to fallback", func(t *testing.T) {
		svc := newTestService(&fakeRepo{articles: []Article{}})
		got := svc.Articles(ctx)
		assert.Equal(t, FallbackArticles(), got)
	})

	t.Run("nil repository resolves to fallback", func(t *testing.T) {
		svc := newTestService(nil)
		got := svc.Articles(ctx)
		assert.Equal(t, FallbackArticles(), got)
	})

	t.Run("live set wins and tags are never nil", func(t *testing.T) {
		svc := newTestService(&fakeRepo{articles: []Article{{Title: "Live", Tags: nil}}})
		got := svc.Articles(ctx)
		require.Len(t, got, 1)
		assert.Equal(t, "Live", got[0].Title)
		assert.NotNil(t, got[0].Tags)
		assert.Empty(t, got[0].Tags)
	})
}

func TestCertificationsStatusFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("filter applies to live data", func(t *testing.T) {
		svc := newTestService(&fakeRepo{certs: []Certification{
			{Name: "Keep Active", Status: "ACTIVE"},
			{Name: "Keep Completed", Status: "Completed"},
			{Name: "Drop Revoked", Status: "revoked"},
			{Name: "Keep Blank", Status: ""}, // missing status counts as active
		}})
		got := svc.Certifications(ctx)
		names := make([]string, 0, len(got))
		for _, c := range got {
			names = append(names, c.Name)
		}
		assert.Equal(t, []string{"Keep Active", "Keep Completed", "Keep Blank"}, names)
	})

	t.Run("filter applies to fallback data identically", func(t *testing.T) {
		svc := newTestService(&fakeRepo{certsErr: errors.New("store down")})
		got := svc.Certifications(ctx)
		require.NotEmpty(t, got)
		for _, c := range got {
			status := c.Status
			if status == "" {
				status = "active"
			}
			assert.Contains(t, []string{"active", "completed"}, strings.ToLower(status))
		}
	})
}

func TestExperiencesNormalization(t *testing.T) {
	svc := newTestService(&fakeRepo{experiences: []Experience{
		{Company: "Acme", Position: "Engineer"},
	}})
	got := svc.Experiences(context.Background())
	require.Len(t, got, 1)
	exp := got[0]
	assert.Equal(t, "Full-time", exp.Type)
	assert.NotNil(t, exp.Responsibilities)
	assert.NotNil(t, exp.Achievements)
	assert.NotNil(t, exp.Tech)
}

func TestSkillCategoryIcons(t *testing.T) {
	svc := newTestService(&fakeRepo{skills: []SkillCategory{
		{Category: "Web Development"},
		{Category: "Quantum Basket Weaving"},
	}})
	got := svc.SkillCategories(context.Background())
	require.Len(t, got, 2)
	assert.Equal(t, "globe", got[0].Icon)
	assert.Equal(t, skillIconPalette[1], got[1].Icon)
	assert.NotNil(t, got[0].Skills)
}

func TestProjectsDecoration(t *testing.T) {
	svc := newTestService(&fakeRepo{projects: []Project{
		{Title: "Pay", Category: "fintech", Status: "production"},
		{Title: "Mystery", Status: ""},
	}})
	got := svc.Projects(context.Background())
	require.Len(t, got, 2)

	assert.Equal(t, "Production", got[0].DisplayStatus)
	assert.Equal(t, variantPrimary, got[0].StatusVariant)
	assert.Equal(t, "credit-card", got[0].Icon)

	assert.Equal(t, "Planned", got[1].DisplayStatus)
	assert.Equal(t, variantSecondary, got[1].StatusVariant)
	assert.Equal(t, projectIconPalette[1], got[1].Icon)
	assert.NotNil(t, got[1].Features)
}

func TestTestimonialsResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("live approved entries pass through", func(t *testing.T) {
		svc := newTestService(&fakeRepo{testimonials: []Testimonial{
			{Name: "Live Client", Status: TestimonialStatusApproved},
		}})
		got := svc.Testimonials(ctx)
		require.Len(t, got, 1)
		assert.Equal(t, "Live Client", got[0].Name)
	})

	t.Run("fallback is never empty", func(t *testing.T) {
		svc := newTestService(&fakeRepo{testimonialsErr: errors.New("store down")})
		got := svc.Testimonials(ctx)
		require.NotEmpty(t, got)
		for _, ts := range got {
			assert.Equal(t, TestimonialStatusApproved, ts.Status)
		}
	})
}

func TestContactInfoMerge(t *testing.T) {
	ctx := context.Background()

	t.Run("each field falls back independently", func(t *testing.T) {
		svc := newTestService(&fakeRepo{settings: &ContactSettings{Email: "live@example.com"}})
		got := svc.ContactInfo(ctx)
		defaults := FallbackContactSettings()
		assert.Equal(t, "live@example.com", got.Email)
		assert.Equal(t, defaults.Phone, got.Phone)
		assert.Equal(t, defaults.Location, got.Location)
	})

	t.Run("settings error drops social links too", func(t *testing.T) {
		repo := &fakeRepo{
			settingsErr: errors.New("store down"),
			socials:     []SocialLink{{Platform: "LinkedIn", URL: "https://linkedin.com/in/x"}},
		}
		svc := newTestService(repo)
		got := svc.ContactInfo(ctx)
		assert.Len(t, got.Channels, 3)
		assert.Zero(t, repo.calls["socials"])
	})

	t.Run("linkedin channel appended on case-insensitive match", func(t *testing.T) {
		svc := newTestService(&fakeRepo{
			settings: &ContactSettings{Email: "a@b.co", Phone: "+254 (0) 700", Location: "Nairobi"},
			socials: []SocialLink{
				{Platform: "GitHub", URL: "https://github.com/x"},
				{Platform: "LinkedIn", URL: "https://linkedin.com/in/x"},
			},
		})
		got := svc.ContactInfo(ctx)
		require.Len(t, got.Channels, 4)
		linked := got.Channels[3]
		assert.Equal(t, "LinkedIn", linked.Label)
		assert.Equal(t, "https://linkedin.com/in/x", linked.Href)
		// tel href strips spaces, parens and the plus sign
		assert.Equal(t, "tel:2540700", got.Channels[1].Href)
	})

	t.Run("linkedin link without url is ignored", func(t *testing.T) {
		svc := newTestService(&fakeRepo{
			settings: &ContactSettings{Email: "a@b.co"},
			socials:  []SocialLink{{Platform: "linkedin", URL: ""}},
		})
		got := svc.ContactInfo(ctx)
		assert.Len(t, got.Channels, 3)
	})
}

func TestEducationWholeRecordFallback(t *testing.T) {
	ctx := context.Background()

	t.Run("no live record uses fallback", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})
		assert.Equal(t, FallbackEducation(), svc.Education(ctx))
	})

	t.Run("live record wins whole", func(t *testing.T) {
		svc := newTestService(&fakeRepo{education: &Education{Degree: "MSc", Institution: "Live U"}})
		got := svc.Education(ctx)
		assert.Equal(t, "MSc", got.Degree)
		// no per-field merge: empty live fields stay empty
		assert.Empty(t, got.Location)
	})
}

func TestSubmitTestimonial(t *testing.T) {
	ctx := context.Background()

	t.Run("requires name and content", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)
		err := svc.SubmitTestimonial(ctx, Testimonial{Name: "  ", Content: "great"})
		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, repo.created)
	})

	t.Run("rating is clamped and status forced to pending", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)
		cases := map[int]int{0: 5, -2: 1, 7: 5, 4: 4}
		for in, want := range cases {
			err := svc.SubmitTestimonial(ctx, Testimonial{
				Name: "Client", Content: "Great work", Rating: in,
				Status: TestimonialStatusApproved, // must not survive
			})
			require.NoError(t, err)
			saved := repo.created[len(repo.created)-1]
			assert.Equal(t, want, saved.Rating, "rating %d", in)
			assert.Equal(t, TestimonialStatusPending, saved.Status)
		}
	})

	t.Run("nil repository fails", func(t *testing.T) {
		svc := newTestService(nil)
		err := svc.SubmitTestimonial(ctx, Testimonial{Name: "Client", Content: "Great work"})
		assert.ErrorIs(t, err, ErrStoreUnavailable)
	})
}

func TestSectionCaching(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{articles: []Article{{Title: "Live", Tags: []string{}}}}
	svc := NewService(repo, cache.NewMemory())

	first := svc.Articles(ctx)
	second := svc.Articles(ctx)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls["articles"], "second read must be served from cache")
}
