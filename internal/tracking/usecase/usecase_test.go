package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/internal/tracking"
	"github.com/fekuna/gasops-dashboard-service/internal/tracking/dto"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

type fakeRepo struct {
	saved  []*model.TrackingLocation
	stored map[string][]model.TrackingLocation // keyed by YYYY-MM-DD
}

func (f *fakeRepo) SaveLocation(ctx context.Context, loc *model.TrackingLocation) error {
	f.saved = append(f.saved, loc)
	return nil
}

func (f *fakeRepo) ListByDriverAndDay(ctx context.Context, driverID string, day time.Time) ([]model.TrackingLocation, error) {
	return f.stored[day.UTC().Format("2006-01-02")], nil
}

type fakeBus struct {
	published []string
}

func (f *fakeBus) Publish(ctx context.Context, channel string, payload []byte) error {
	f.published = append(f.published, channel)
	return nil
}

func (f *fakeBus) Subscribe(ctx context.Context, channel string) *redis.PubSub {
	return nil
}

func TestRecordLocationPersistsAndPublishes(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	bus := &fakeBus{}
	uc := NewTrackingUseCase(repo, bus, 500, 0, logger.NewNop())

	loc, err := uc.RecordLocation(context.Background(), &dto.RecordLocationInput{
		DriverID:  "driver_123",
		Latitude:  -6.2,
		Longitude: 106.8,
		Date:      "2026-03-10T08:00:00Z",
	})
	require.NoError(t, err)
	require.NotNil(t, loc)

	require.Len(t, repo.saved, 1)
	assert.Equal(t, "driver_123", repo.saved[0].DriverID)
	assert.Equal(t, time.UTC, repo.saved[0].Date.Location())

	require.Len(t, bus.published, 1)
	assert.Equal(t, "tracking.locations.driver_123", bus.published[0])
}

func TestRecordLocationValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input dto.RecordLocationInput
	}{
		{name: "missing driver", input: dto.RecordLocationInput{Latitude: 1, Longitude: 1}},
		{name: "latitude out of range", input: dto.RecordLocationInput{DriverID: "d", Latitude: 91, Longitude: 1}},
		{name: "longitude out of range", input: dto.RecordLocationInput{DriverID: "d", Latitude: 1, Longitude: -181}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := &fakeRepo{}
			uc := NewTrackingUseCase(repo, &fakeBus{}, 500, 0, logger.NewNop())

			loc, err := uc.RecordLocation(context.Background(), &tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrValidation)
			assert.Nil(t, loc)
			assert.Empty(t, repo.saved)
		})
	}
}

func TestRecordLocationThrottlesCloseSamples(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	uc := NewTrackingUseCase(repo, &fakeBus{}, 500, 10*time.Second, logger.NewNop())

	first, err := uc.RecordLocation(context.Background(), &dto.RecordLocationInput{
		DriverID: "d", Latitude: 1, Longitude: 1,
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	// Immediately after, the second sample is inside the window.
	second, err := uc.RecordLocation(context.Background(), &dto.RecordLocationInput{
		DriverID: "d", Latitude: 2, Longitude: 2,
	})
	require.NoError(t, err)
	assert.Nil(t, second)
	assert.Len(t, repo.saved, 1)

	// A different driver has its own window.
	other, err := uc.RecordLocation(context.Background(), &dto.RecordLocationInput{
		DriverID: "e", Latitude: 3, Longitude: 3,
	})
	require.NoError(t, err)
	assert.NotNil(t, other)
}

func TestRecordLocationFailureReportLatchesFeed(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{}
	uc := NewTrackingUseCase(repo, &fakeBus{}, 500, 0, logger.NewNop())

	loc, err := uc.RecordLocation(context.Background(), &dto.RecordLocationInput{
		DriverID: "d",
		Failure:  "timeout",
	})
	require.NoError(t, err)
	assert.Nil(t, loc)
	assert.Empty(t, repo.saved)
}

func TestTrackRecordModeReplaysSelectedDay(t *testing.T) {
	t.Parallel()

	repo := &fakeRepo{
		stored: map[string][]model.TrackingLocation{
			"2026-03-10": {
				{DriverID: "d", Latitude: 1, Longitude: 1},
				{DriverID: "d", Latitude: 2, Longitude: 2},
			},
			"2026-03-11": {
				{DriverID: "d", Latitude: 9, Longitude: 9},
			},
		},
	}
	uc := NewTrackingUseCase(repo, &fakeBus{}, 500, 0, logger.NewNop())

	day10, _ := time.Parse("2006-01-02", "2026-03-10")
	snap, err := uc.Track(context.Background(), "d", tracking.ModeRecord, day10, false)
	require.NoError(t, err)

	require.Len(t, snap.Path, 2)
	assert.Equal(t, tracking.ModeRecord, snap.Mode)
	require.NotNil(t, snap.Center)
	assert.Equal(t, tracking.Point{Latitude: 1, Longitude: 1}, *snap.Center, "record mode recenters to the first point")

	// Changing the selected day replaces the path wholesale.
	day11, _ := time.Parse("2006-01-02", "2026-03-11")
	snap, err = uc.Track(context.Background(), "d", tracking.ModeRecord, day11, false)
	require.NoError(t, err)
	require.Len(t, snap.Path, 1)
	assert.Equal(t, tracking.Point{Latitude: 9, Longitude: 9}, snap.Path[0])
}

func TestTrackRejectsUnknownMode(t *testing.T) {
	t.Parallel()

	uc := NewTrackingUseCase(&fakeRepo{}, &fakeBus{}, 500, 0, logger.NewNop())

	_, err := uc.Track(context.Background(), "d", "replay", time.Now(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestTrackRequiresDriver(t *testing.T) {
	t.Parallel()

	uc := NewTrackingUseCase(&fakeRepo{}, &fakeBus{}, 500, 0, logger.NewNop())

	_, err := uc.Track(context.Background(), "", tracking.ModeRecord, time.Now(), true)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrValidation)
}
