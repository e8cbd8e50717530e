package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dancanmurithi/portfolio/api/http/presenter"
	"github.com/dancanmurithi/portfolio/pkg/contact"
)

// ContactHandler relays contact-form submissions.
type ContactHandler struct {
	uc contact.UseCase
}

func NewContactHandler(uc contact.UseCase) *ContactHandler { return &ContactHandler{uc: uc} }

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Send validates the submission, persists it with status "unread" and sends
// the notification email.
// @Summary Send a contact message
// @Tags    contact
// @Accept  json
// @Produce json
// @Param   input body contactRequest true "Contact message"
// @Success 200 {object} presenter.ResultResponse
// @Failure 400 {object} presenter.ResultResponse
// @Router  /contact [post]
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Failure(c, http.StatusBadRequest, "invalid JSON body")
	}
	err := h.uc.Send(c.Context(), contact.Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		var vErr *contact.ValidationError
		if errors.As(err, &vErr) {
			return presenter.Failure(c, http.StatusBadRequest, vErr.Fields)
		}
		return presenter.Failure(c, http.StatusBadRequest, err.Error())
	}
	return presenter.Success(c)
}
