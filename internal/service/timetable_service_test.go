package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rosterkit/caseload-api/internal/dto"
	appErrors "github.com/rosterkit/caseload-api/pkg/errors"
)

type memoryCacheRepo struct {
	entries map[string][]byte
	gets    int
	hits    int
	sets    int
}

func newMemoryCacheRepo() *memoryCacheRepo {
	return &memoryCacheRepo{entries: map[string][]byte{}}
}

func (r *memoryCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	r.gets++
	raw, ok := r.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	r.hits++
	return json.Unmarshal(raw, dest)
}

func (r *memoryCacheRepo) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	r.sets++
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.entries[key] = raw
	return nil
}

func newTimetableServiceFixture(repo CacheRepository) *TimetableService {
	cache := NewCacheService(repo, nil, time.Minute, zap.NewNop(), repo != nil)
	return NewTimetableService(cache, nil, validator.New(), zap.NewNop(), TimetableConfig{})
}

func fixtureRequest() dto.GenerateTimetableRequest {
	return dto.GenerateTimetableRequest{
		CycleLength:  2,
		WorkdayStart: "08:00",
		WorkdayEnd:   "09:00",
		Clients: []dto.ClientRequest{
			{
				Name:                 "Alice",
				SessionsNeeded:       2,
				SessionLengthMinutes: 10,
				Availability: map[string][]string{
					"Day1": {"08:00", "08:10", "08:20"},
				},
			},
		},
	}
}

func TestTimetableServiceGenerateSuccess(t *testing.T) {
	service := newTimetableServiceFixture(nil)

	resp, err := service.Generate(context.Background(), fixtureRequest())
	require.NoError(t, err)

	assert.Equal(t, []string{"Day1", "Day2"}, resp.Days)
	assert.Len(t, resp.TimeSlots, 6)
	assert.Empty(t, resp.Conflicts)

	summary, ok := resp.Summary["Alice"]
	require.True(t, ok)
	assert.Equal(t, 2, summary.Needed)
	assert.Equal(t, 2, summary.Scheduled)
	assert.Empty(t, summary.Reason)

	assert.Equal(t, []string{"Alice"}, resp.Timetable["Day1"]["08:00"])
	assert.Equal(t, []string{"Alice"}, resp.Timetable["Day1"]["08:10"])
	assert.Equal(t, 0, resp.DisplayIDs["Alice"])
}

func TestTimetableServiceGenerateReportsShortfall(t *testing.T) {
	service := newTimetableServiceFixture(nil)

	req := fixtureRequest()
	req.Clients[0].SessionsNeeded = 5

	resp, err := service.Generate(context.Background(), req)
	require.NoError(t, err, "shortfalls are reported in the payload, not as errors")
	require.Len(t, resp.Conflicts, 1)
	assert.Contains(t, resp.Conflicts[0], "Unable to fully schedule Alice")
	assert.Equal(t, 3, resp.Summary["Alice"].Scheduled)
}

func TestTimetableServiceGenerateUsesCache(t *testing.T) {
	repo := newMemoryCacheRepo()
	service := newTimetableServiceFixture(repo)

	first, err := service.Generate(context.Background(), fixtureRequest())
	require.NoError(t, err)
	require.Equal(t, 1, repo.sets)
	require.Equal(t, 0, repo.hits)

	second, err := service.Generate(context.Background(), fixtureRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, repo.sets, "cached result must not be recomputed and rewritten")
	assert.Equal(t, 1, repo.hits)
	assert.Equal(t, first.Summary, second.Summary)
	assert.Equal(t, first.Timetable, second.Timetable)
}

func TestTimetableServiceGenerateDistinctPayloadsCacheSeparately(t *testing.T) {
	repo := newMemoryCacheRepo()
	service := newTimetableServiceFixture(repo)

	_, err := service.Generate(context.Background(), fixtureRequest())
	require.NoError(t, err)

	req := fixtureRequest()
	req.Clients[0].SessionsNeeded = 1
	_, err = service.Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, repo.sets)
	assert.Equal(t, 0, repo.hits)
}

func TestTimetableServiceExportCSV(t *testing.T) {
	service := newTimetableServiceFixture(nil)

	artifact, err := service.Export(context.Background(), fixtureRequest(), "csv")
	require.NoError(t, err)
	assert.Equal(t, "timetable.csv", artifact.FileName)
	assert.Equal(t, "text/csv", artifact.ContentType)
	assert.True(t, bytes.HasPrefix(artifact.Content, []byte("Time,")))
	assert.Contains(t, string(artifact.Content), "Alice")
}

func TestTimetableServiceExportDefaultsToCSV(t *testing.T) {
	service := newTimetableServiceFixture(nil)

	artifact, err := service.Export(context.Background(), fixtureRequest(), "")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", artifact.ContentType)
}

func TestTimetableServiceExportPDF(t *testing.T) {
	service := newTimetableServiceFixture(nil)

	artifact, err := service.Export(context.Background(), fixtureRequest(), "pdf")
	require.NoError(t, err)
	assert.Equal(t, "timetable.pdf", artifact.FileName)
	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.True(t, bytes.HasPrefix(artifact.Content, []byte("%PDF")))
}

func TestTimetableServiceExportUnknownFormat(t *testing.T) {
	service := newTimetableServiceFixture(nil)

	_, err := service.Export(context.Background(), fixtureRequest(), "xlsx")
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Contains(t, appErr.Message, "xlsx")
}
