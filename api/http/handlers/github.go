package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dancanmurithi/portfolio/api/http/presenter"
	"github.com/dancanmurithi/portfolio/pkg/github"
)

// GitHubHandler serves the aggregated activity summary.
type GitHubHandler struct {
	uc github.UseCase
}

func NewGitHubHandler(uc github.UseCase) *GitHubHandler { return &GitHubHandler{uc: uc} }

type activityRequest struct {
	Username string `json:"username"`
}

// activityResponse is the summary plus an error indicator. When Error is
// set, callers must render a distinct "unavailable" state instead of an
// empty-but-successful one.
type activityResponse struct {
	github.Summary
	Error string `json:"error,omitempty"`
}

// Activity aggregates repositories and recent public events for a user.
// @Summary GitHub activity summary
// @Tags    github
// @Accept  json
// @Produce json
// @Param   input body activityRequest true "GitHub username"
// @Success 200 {object} activityResponse
// @Failure 400 {object} activityResponse
// @Failure 500 {object} activityResponse
// @Router  /github/activity [post]
func (h *GitHubHandler) Activity(c *fiber.Ctx) error {
	var req activityRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.JSON(c, http.StatusBadRequest, activityResponse{
			Summary: github.ZeroSummary(),
			Error:   "invalid JSON body",
		})
	}
	summary, err := h.uc.Activity(c.Context(), req.Username)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, github.ErrUsernameRequired) {
			status = http.StatusBadRequest
		}
		return presenter.JSON(c, status, activityResponse{
			Summary: github.ZeroSummary(),
			Error:   err.Error(),
		})
	}
	return presenter.JSON(c, http.StatusOK, activityResponse{Summary: summary})
}
