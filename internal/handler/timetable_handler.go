package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rosterkit/caseload-api/internal/dto"
	"github.com/rosterkit/caseload-api/internal/service"
	appErrors "github.com/rosterkit/caseload-api/pkg/errors"
	"github.com/rosterkit/caseload-api/pkg/middleware/requestid"
	"github.com/rosterkit/caseload-api/pkg/response"
)

const maxClients = 512

type timetableScheduler interface {
	Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error)
	Export(ctx context.Context, req dto.GenerateTimetableRequest, format string) (*service.ExportArtifact, error)
}

// TimetableHandler exposes the timetable endpoints.
type TimetableHandler struct {
	service timetableScheduler
}

// NewTimetableHandler constructs the handler.
func NewTimetableHandler(svc *service.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: svc}
}

// Generate godoc
// @Summary Build a conflict-annotated timetable
// @Description Accepts a JSON body, or a form post carrying the payload in a payload_json field.
// @Tags Timetable
// @Accept json
// @Produce json
// @Param payload body dto.GenerateTimetableRequest true "Scheduling payload"
// @Success 200 {object} response.Envelope
// @Router /timetable/generate [post]
func (h *TimetableHandler) Generate(c *gin.Context) {
	req, err := decodeTimetableRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	result, err := h.service.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	meta := map[string]interface{}{}
	if reqID := requestid.Value(c); reqID != "" {
		meta["request_id"] = reqID
	}
	response.JSON(c, http.StatusOK, result, meta)
}

// Export godoc
// @Summary Export the computed timetable as CSV or PDF
// @Tags Timetable
// @Accept json
// @Produce octet-stream
// @Param format query string false "csv or pdf" default(csv)
// @Param payload body dto.GenerateTimetableRequest true "Scheduling payload"
// @Success 200 {file} binary
// @Router /timetable/export [post]
func (h *TimetableHandler) Export(c *gin.Context) {
	req, err := decodeTimetableRequest(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	artifact, err := h.service.Export(c.Request.Context(), req, c.DefaultQuery("format", "csv"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.FileName))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Content)
}

// decodeTimetableRequest accepts either a JSON body or a form post
// whose payload_json field holds the same JSON document. Anything that
// decodes is scheduled best-effort; only an undecodable payload is a
// client error.
func decodeTimetableRequest(c *gin.Context) (dto.GenerateTimetableRequest, error) {
	var req dto.GenerateTimetableRequest

	contentType := c.ContentType()
	if strings.Contains(contentType, "form") {
		raw := c.PostForm("payload_json")
		if raw == "" {
			return req, appErrors.Clone(appErrors.ErrValidation, "missing payload_json form field")
		}
		if err := json.Unmarshal([]byte(raw), &req); err != nil {
			return req, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid JSON in payload_json")
		}
	} else if err := c.ShouldBindJSON(&req); err != nil {
		return req, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}

	if len(req.Clients) > maxClients {
		return req, appErrors.Clone(appErrors.ErrValidation, "clients exceeds supported limit")
	}
	return req, nil
}
