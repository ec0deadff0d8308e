package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/rosterkit/caseload-api/internal/dto"
	"github.com/rosterkit/caseload-api/internal/service"
)

type timetableSchedulerMock struct {
	captured dto.GenerateTimetableRequest
	format   string
	err      error
}

func (m *timetableSchedulerMock) Generate(ctx context.Context, req dto.GenerateTimetableRequest) (*dto.GenerateTimetableResponse, error) {
	m.captured = req
	if m.err != nil {
		return nil, m.err
	}
	return &dto.GenerateTimetableResponse{
		Days:      []string{"Day1"},
		TimeSlots: []string{"08:00"},
		Timetable: map[string]map[string][]string{"Day1": {"08:00": {"Alice"}}},
	}, nil
}

func (m *timetableSchedulerMock) Export(ctx context.Context, req dto.GenerateTimetableRequest, format string) (*service.ExportArtifact, error) {
	m.captured = req
	m.format = format
	if m.err != nil {
		return nil, m.err
	}
	return &service.ExportArtifact{FileName: "timetable.csv", ContentType: "text/csv", Content: []byte("Time,Day1\n")}, nil
}

func validTimetablePayload() []byte {
	return []byte(`{
		"cycle_length": 2,
		"clients": [
			{"name": "Alice", "sessions_needed": 1, "availability": {"Day1": ["08:00"]}}
		]
	}`)
}

func postTimetable(handler func(*gin.Context), target, contentType string, body []byte) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	req, _ := http.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handler(c)
	return w
}

func TestTimetableGenerateJSONBody(t *testing.T) {
	mockSvc := &timetableSchedulerMock{}
	handler := &TimetableHandler{service: mockSvc}

	w := postTimetable(handler.Generate, "/timetable/generate", "application/json", validTimetablePayload())

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 2, mockSvc.captured.CycleLength)
	require.Len(t, mockSvc.captured.Clients, 1)
	require.Equal(t, "Alice", mockSvc.captured.Clients[0].Name)
	require.Contains(t, w.Body.String(), `"timetable"`)
}

func TestTimetableGenerateFormPayload(t *testing.T) {
	mockSvc := &timetableSchedulerMock{}
	handler := &TimetableHandler{service: mockSvc}

	form := url.Values{"payload_json": {string(validTimetablePayload())}}
	w := postTimetable(handler.Generate, "/timetable/generate", "application/x-www-form-urlencoded", []byte(form.Encode()))

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 2, mockSvc.captured.CycleLength)
}

func TestTimetableGenerateMissingFormField(t *testing.T) {
	handler := &TimetableHandler{service: &timetableSchedulerMock{}}

	form := url.Values{"other": {"x"}}
	w := postTimetable(handler.Generate, "/timetable/generate", "application/x-www-form-urlencoded", []byte(form.Encode()))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "payload_json")
}

func TestTimetableGenerateMalformedJSON(t *testing.T) {
	handler := &TimetableHandler{service: &timetableSchedulerMock{}}

	w := postTimetable(handler.Generate, "/timetable/generate", "application/json", []byte(`{"clients":`))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimetableGenerateMalformedFormJSON(t *testing.T) {
	handler := &TimetableHandler{service: &timetableSchedulerMock{}}

	form := url.Values{"payload_json": {`{"clients":`}}
	w := postTimetable(handler.Generate, "/timetable/generate", "application/x-www-form-urlencoded", []byte(form.Encode()))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "payload_json")
}

func TestTimetableGenerateTooManyClients(t *testing.T) {
	handler := &TimetableHandler{service: &timetableSchedulerMock{}}

	var sb strings.Builder
	sb.WriteString(`{"clients":[`)
	for i := 0; i <= maxClients; i++ {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`{"name":"c"}`)
	}
	sb.WriteString(`]}`)
	w := postTimetable(handler.Generate, "/timetable/generate", "application/json", []byte(sb.String()))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTimetableExportHeaders(t *testing.T) {
	mockSvc := &timetableSchedulerMock{}
	handler := &TimetableHandler{service: mockSvc}

	w := postTimetable(handler.Export, "/timetable/export?format=csv", "application/json", validTimetablePayload())

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "csv", mockSvc.format)
	require.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	require.Contains(t, w.Header().Get("Content-Disposition"), "timetable.csv")
}

func TestTimetableExportDefaultsFormat(t *testing.T) {
	mockSvc := &timetableSchedulerMock{}
	handler := &TimetableHandler{service: mockSvc}

	w := postTimetable(handler.Export, "/timetable/export", "application/json", validTimetablePayload())

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "csv", mockSvc.format)
}
