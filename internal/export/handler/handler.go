// Package handler provides the admin CSV export endpoint.
package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/shaundavidpr/hashitup-sub000/internal/export/repository"
)

// Handler streams admin exports.
type Handler struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new export handler instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, logger: logger}
}

var csvHeader = []string{
	"team_name", "institution", "city", "declared_size",
	"leader_name", "leader_email",
	"idea_title", "idea_status", "idea_is_draft",
}

// TeamsCSV handles GET /admin/export/teams.csv.
func (h *Handler) TeamsCSV(c *gin.Context) {
	rows, err := h.repo.ListTeams(c.Request.Context())
	if err != nil {
		h.logger.Errorw("error exporting teams", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{"code": "INTERNAL_ERROR", "message": "internal server error"},
		})
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="teams.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	if err := w.Write(csvHeader); err != nil {
		h.logger.Errorw("error writing csv header", "error", err)
		return
	}

	for _, row := range rows {
		draft := ""
		if row.IdeaIsDraft != nil {
			draft = strconv.FormatBool(*row.IdeaIsDraft)
		}
		record := []string{
			row.TeamName, row.Institution, row.City,
			strconv.Itoa(row.NumberOfMembers),
			row.LeaderName, row.LeaderEmail,
			row.IdeaTitle, row.IdeaStatus, draft,
		}
		if err := w.Write(record); err != nil {
			h.logger.Errorw("error writing csv row", "error", err)
			return
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		h.logger.Errorw("error flushing csv", "error", err)
	}
}
