package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dancanmurithi/portfolio/api/http/presenter"
	"github.com/dancanmurithi/portfolio/pkg/content"
)

// ContentHandler serves the resolved section payloads. Every read responds
// 200 with non-empty data: fetch failures degrade to embedded fallbacks
// inside the use case, never to an error status.
type ContentHandler struct {
	uc content.UseCase
}

func NewContentHandler(uc content.UseCase) *ContentHandler { return &ContentHandler{uc: uc} }

// @Summary Hero section
// @Tags    sections
// @Produce json
// @Success 200 {object} content.Profile
// @Router  /sections/hero [get]
func (h *ContentHandler) Hero(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Hero())
}

// @Summary Skill categories with derived icons
// @Tags    sections
// @Produce json
// @Success 200 {array} content.SkillCategory
// @Router  /sections/skills [get]
func (h *ContentHandler) Skills(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.SkillCategories(c.Context()))
}

// @Summary Work experience timeline
// @Tags    sections
// @Produce json
// @Success 200 {array} content.Experience
// @Router  /sections/experience [get]
func (h *ContentHandler) Experience(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Experiences(c.Context()))
}

// @Summary Projects with display status and icons
// @Tags    sections
// @Produce json
// @Success 200 {array} content.Project
// @Router  /sections/projects [get]
func (h *ContentHandler) Projects(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Projects(c.Context()))
}

// @Summary Certifications (active and completed only)
// @Tags    sections
// @Produce json
// @Success 200 {array} content.Certification
// @Router  /sections/certifications [get]
func (h *ContentHandler) Certifications(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Certifications(c.Context()))
}

// @Summary Blog articles
// @Tags    sections
// @Produce json
// @Success 200 {array} content.Article
// @Router  /sections/articles [get]
func (h *ContentHandler) Articles(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Articles(c.Context()))
}

// @Summary Approved testimonials
// @Tags    sections
// @Produce json
// @Success 200 {array} content.Testimonial
// @Router  /sections/testimonials [get]
func (h *ContentHandler) Testimonials(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Testimonials(c.Context()))
}

// @Summary Merged contact info and channels
// @Tags    sections
// @Produce json
// @Success 200 {object} content.ContactInfo
// @Router  /sections/contact [get]
func (h *ContentHandler) ContactInfo(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.ContactInfo(c.Context()))
}

// @Summary Most recent education record
// @Tags    sections
// @Produce json
// @Success 200 {object} content.Education
// @Router  /sections/education [get]
func (h *ContentHandler) Education(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, h.uc.Education(c.Context()))
}

type testimonialRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Company string `json:"company"`
	Rating  int    `json:"rating"`
	Content string `json:"content"`
}

// SubmitTestimonial stores a visitor testimonial with status "pending";
// it never appears until approved.
// @Summary Submit a testimonial
// @Tags    sections
// @Accept  json
// @Produce json
// @Param   input body testimonialRequest true "Testimonial"
// @Success 200 {object} presenter.ResultResponse
// @Failure 400 {object} presenter.ResultResponse
// @Router  /testimonials [post]
func (h *ContentHandler) SubmitTestimonial(c *fiber.Ctx) error {
	var req testimonialRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Failure(c, http.StatusBadRequest, "invalid JSON body")
	}
	err := h.uc.SubmitTestimonial(c.Context(), content.Testimonial{
		Name:    req.Name,
		Email:   req.Email,
		Role:    req.Role,
		Company: req.Company,
		Rating:  req.Rating,
		Content: req.Content,
	})
	if err != nil {
		if errors.Is(err, content.ErrValidation) {
			return presenter.Failure(c, http.StatusBadRequest, "name and content are required")
		}
		return presenter.Failure(c, http.StatusBadRequest, "unable to save testimonial")
	}
	return presenter.Success(c)
}
