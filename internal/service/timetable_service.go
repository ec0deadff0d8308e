package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rosterkit/caseload-api/internal/dto"
	"github.com/rosterkit/caseload-api/internal/engine"
	appErrors "github.com/rosterkit/caseload-api/pkg/errors"
	"github.com/rosterkit/caseload-api/pkg/export"
)

// ExportArtifact is a rendered timetable ready to stream to a caller.
type ExportArtifact struct {
	FileName    string
	ContentType string
	Content     []byte
}

// TimetableConfig governs service behaviour.
type TimetableConfig struct {
	SlotMinutes int
	PaletteSize int
}

// TimetableService validates payloads, runs the placement engine and
// handles caching, metrics and export rendering around it.
type TimetableService struct {
	params    engine.Params
	cache     *CacheService
	metrics   *MetricsService
	validator *validator.Validate
	logger    *zap.Logger
	csv       *export.CSVExporter
	pdf       *export.PDFExporter
}

// NewTimetableService wires scheduler dependencies.
func NewTimetableService(cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger, cfg TimetableConfig) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		params:    engine.Params{SlotMinutes: cfg.SlotMinutes, PaletteSize: cfg.PaletteSize},
		cache:     cache,
		metrics:   metrics,
		validator: validate,
		logger:    logger,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
	}
}

// Generate runs the constraint-based placement pipeline. Scheduling
// shortfalls are reported inside the response, never as errors; only a
// structurally invalid payload is rejected.
func (s *TimetableService) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}

	key, keyErr := timetableCacheKey(req)
	if keyErr == nil {
		var cached dto.GenerateTimetableResponse
		if s.cache.Get(ctx, key, &cached) {
			return &cached, nil
		}
	}

	runID := uuid.NewString()
	problem := engine.Normalize(toEngineRequest(req), s.params)
	start := time.Now()
	result := engine.Solve(problem)
	elapsed := time.Since(start)

	placed := 0
	for _, entry := range result.Summary {
		placed += entry.Scheduled
	}
	s.metrics.ObserveScheduleRun(placed, len(result.Conflicts), elapsed)
	s.logger.Info("timetable generated",
		zap.String("run_id", runID),
		zap.Int("clients", len(problem.Clients)),
		zap.Int("days", len(result.Days)),
		zap.Int("slots", len(result.Slots)),
		zap.Int("conflicts", len(result.Conflicts)),
		zap.Duration("elapsed", elapsed),
	)

	resp := fromEngineResult(result)
	if keyErr == nil {
		s.cache.Set(ctx, key, resp)
	}
	return resp, nil
}

// Export renders the computed timetable in the requested format.
func (s *TimetableService) Export(ctx context.Context, req dto.GenerateTimetableRequest, format string) (*ExportArtifact, error) {
	resp, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	data := export.GridDataset(resp.Days, resp.TimeSlots, resp.Timetable)
	switch strings.ToLower(format) {
	case "", "csv":
		content, err := s.csv.Render(data)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
		}
		return &ExportArtifact{FileName: "timetable.csv", ContentType: "text/csv", Content: content}, nil
	case "pdf":
		content, err := s.pdf.Render(data, "Timetable")
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render pdf")
		}
		return &ExportArtifact{FileName: "timetable.pdf", ContentType: "application/pdf", Content: content}, nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported export format %q", format))
	}
}

// timetableCacheKey hashes the canonical JSON encoding of the payload;
// the engine is pure, so the payload fully determines the response.
func timetableCacheKey(req dto.GenerateTimetableRequest) (string, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return "timetable:" + hex.EncodeToString(sum[:]), nil
}

func toEngineRequest(req dto.GenerateTimetableRequest) engine.Request {
	blackouts := make([]engine.Window, 0, len(req.Blackouts))
	for _, b := range req.Blackouts {
		blackouts = append(blackouts, engine.Window{Start: b.Start, End: b.End})
	}
	clients := make([]engine.ClientInput, 0, len(req.Clients))
	for _, c := range req.Clients {
		clients = append(clients, engine.ClientInput{
			Name:                 c.Name,
			SessionsNeeded:       c.SessionsNeeded,
			SessionLengthMinutes: c.SessionLengthMinutes,
			Tag:                  c.Tag,
			SpacingRule:          c.SpacingRule,
			MaxPerDay:            c.MaxPerDay,
			GroupID:              c.GroupID,
			Availability:         c.Availability,
		})
	}
	var resource *engine.ResourceInput
	if req.Resource != nil {
		resource = &engine.ResourceInput{
			MaxSessionsPerDay: req.Resource.MaxSessionsPerDay,
			Unavailable:       req.Resource.Unavailable,
		}
	}
	return engine.Request{
		CycleLength:       req.CycleLength,
		WorkdayStart:      req.WorkdayStart,
		WorkdayEnd:        req.WorkdayEnd,
		SlotTemplate:      req.SlotTemplate,
		MaxClientsPerSlot: req.MaxClientsPerSlot,
		Blackouts:         blackouts,
		Clients:           clients,
		Resource:          resource,
	}
}

func fromEngineResult(result *engine.Result) *dto.GenerateTimetableResponse {
	summary := make(map[string]dto.ClientSummary, len(result.Summary))
	for name, entry := range result.Summary {
		summary[name] = dto.ClientSummary{
			Needed:        entry.Needed,
			Scheduled:     entry.Scheduled,
			SessionLength: entry.SessionLength,
			Reason:        entry.Reason,
		}
	}
	return &dto.GenerateTimetableResponse{
		Days:       result.Days,
		TimeSlots:  result.Slots,
		Timetable:  result.Grid,
		Conflicts:  result.Conflicts,
		Summary:    summary,
		DisplayIDs: result.DisplayIDs,
	}
}
