package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fekuna/gasops-dashboard-service/internal/model"
	"github.com/fekuna/gasops-dashboard-service/internal/tracking"
	"github.com/fekuna/gasops-dashboard-service/internal/tracking/dto"
	"github.com/fekuna/gasops-dashboard-service/pkg/logger"
)

func locationChannel(driverID string) string {
	return "tracking.locations." + driverID
}

// LiveBus is the pub/sub surface the feed relies on. Satisfied by
// cache.RedisClient.
type LiveBus interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string) *redis.PubSub
}

type feedState struct {
	feed       *tracking.Feed
	cancelLive context.CancelFunc
	lastSample time.Time
	day        time.Time
	hasDay     bool
}

type trackingUseCase struct {
	repo        tracking.Repository
	bus         LiveBus
	logger      logger.ZapLogger
	capacity    int
	minInterval time.Duration

	mu    sync.Mutex
	feeds map[string]*feedState
}

func NewTrackingUseCase(repo tracking.Repository, bus LiveBus, capacity int, minInterval time.Duration, log logger.ZapLogger) tracking.UseCase {
	return &trackingUseCase{
		repo:        repo,
		bus:         bus,
		logger:      log,
		capacity:    capacity,
		minInterval: minInterval,
		feeds:       make(map[string]*feedState),
	}
}

// ensureLocked returns the driver's feed state, creating it on first use.
// Caller holds uc.mu.
func (uc *trackingUseCase) ensureLocked(driverID string) *feedState {
	st, ok := uc.feeds[driverID]
	if !ok {
		st = &feedState{feed: tracking.NewFeed(uc.capacity)}
		uc.feeds[driverID] = st
	}
	return st
}

func (uc *trackingUseCase) RecordLocation(ctx context.Context, input *dto.RecordLocationInput) (*model.TrackingLocation, error) {
	if input.DriverID == "" {
		return nil, fmt.Errorf("%w: driver_id is required", model.ErrValidation)
	}

	if input.Failure != "" {
		reason := parseFailure(input.Failure)
		uc.mu.Lock()
		uc.ensureLocked(input.DriverID).feed.Fail(reason)
		uc.mu.Unlock()
		uc.logger.Warn("driver position source failed",
			zap.String("driver_id", input.DriverID),
			zap.String("reason", string(reason)),
		)
		return nil, nil
	}

	if input.Latitude < -90 || input.Latitude > 90 || input.Longitude < -180 || input.Longitude > 180 {
		return nil, model.ErrInvalidCoordinates
	}

	date, err := model.ParseClientTime(input.Date)
	if err != nil {
		return nil, err
	}

	// Samples closer together than the configured interval are dropped,
	// matching the sender's 10s gate when it is bypassed.
	now := time.Now()
	uc.mu.Lock()
	st := uc.ensureLocked(input.DriverID)
	if !st.lastSample.IsZero() && now.Sub(st.lastSample) < uc.minInterval {
		uc.mu.Unlock()
		return nil, nil
	}
	st.lastSample = now
	uc.mu.Unlock()

	loc := &model.TrackingLocation{
		ID:        uuid.New().String(),
		DriverID:  input.DriverID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Date:      date,
	}

	if err := uc.repo.SaveLocation(ctx, loc); err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrStore, err)
	}

	payload, err := json.Marshal(loc)
	if err == nil {
		err = uc.bus.Publish(ctx, locationChannel(loc.DriverID), payload)
	}
	if err != nil {
		// Live viewers miss this sample; the persisted row still lands.
		uc.logger.Warn("failed to publish location sample",
			zap.String("driver_id", loc.DriverID),
			zap.Error(err),
		)
	}

	return loc, nil
}

func (uc *trackingUseCase) Track(ctx context.Context, driverID string, mode tracking.Mode, day time.Time, follow bool) (tracking.Snapshot, error) {
	if driverID == "" {
		return tracking.Snapshot{}, fmt.Errorf("%w: driver_id is required", model.ErrValidation)
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	st := uc.ensureLocked(driverID)

	switch mode {
	case tracking.ModeLive:
		st.feed.SetMode(tracking.ModeLive)
		if st.cancelLive == nil {
			liveCtx, cancel := context.WithCancel(context.Background())
			st.cancelLive = cancel
			go uc.listen(liveCtx, driverID, st.feed)
		}

	case tracking.ModeRecord:
		if st.cancelLive != nil {
			st.cancelLive()
			st.cancelLive = nil
		}
		wasRecord := st.feed.Mode() == tracking.ModeRecord
		st.feed.SetMode(tracking.ModeRecord)

		dayChanged := !st.hasDay || !st.day.Equal(day.UTC().Truncate(24*time.Hour))
		if !wasRecord || dayChanged {
			locations, err := uc.repo.ListByDriverAndDay(ctx, driverID, day)
			if err != nil {
				return tracking.Snapshot{}, fmt.Errorf("%w: %w", model.ErrStore, err)
			}
			points := make([]tracking.Point, len(locations))
			for i, loc := range locations {
				points[i] = tracking.Point{Latitude: loc.Latitude, Longitude: loc.Longitude}
			}
			st.feed.Replace(points)
			st.day = day.UTC().Truncate(24 * time.Hour)
			st.hasDay = true
		}

	default:
		return tracking.Snapshot{}, fmt.Errorf("%w: unknown tracking mode %q", model.ErrValidation, mode)
	}

	st.feed.SetFollow(follow)
	return st.feed.Snapshot(), nil
}

// listen feeds live samples from the driver's pub/sub channel into the feed
// until the subscription context is canceled.
func (uc *trackingUseCase) listen(ctx context.Context, driverID string, feed *tracking.Feed) {
	sub := uc.bus.Subscribe(ctx, locationChannel(driverID))
	defer sub.Close()

	uc.logger.Info("live tracking subscription started", zap.String("driver_id", driverID))

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			uc.logger.Info("live tracking subscription stopped", zap.String("driver_id", driverID))
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var loc model.TrackingLocation
			if err := json.Unmarshal([]byte(msg.Payload), &loc); err != nil {
				uc.logger.Error("bad location payload", zap.String("driver_id", driverID), zap.Error(err))
				continue
			}
			feed.Append(loc.Latitude, loc.Longitude)
		}
	}
}

func (uc *trackingUseCase) Close() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, st := range uc.feeds {
		if st.cancelLive != nil {
			st.cancelLive()
			st.cancelLive = nil
		}
	}
}

func parseFailure(s string) model.SensorFailure {
	switch model.SensorFailure(s) {
	case model.SensorPermissionDenied, model.SensorPositionUnavailable, model.SensorTimeout:
		return model.SensorFailure(s)
	default:
		return model.SensorUnknown
	}
}
