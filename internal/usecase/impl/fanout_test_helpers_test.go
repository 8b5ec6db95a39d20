package impl

import (
	"io"
	"log/slog"
	"math"
	"time"

	"geoalert/config"
	"geoalert/internal/domain/entity"
	"geoalert/internal/domain/geo"
)

const testWebAppURL = "https://map.example.com/app"

// dniproCenter is used as the reference location across fan-out tests.
var dniproCenter = struct{ lat, lon float64 }{48.4647, 35.0461}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newTestConfig(workers int, timeout time.Duration) *config.Config {
	return &config.Config{
		Fanout: &config.FanoutConfig{
			PageSize:        100,
			Workers:         workers,
			DispatchTimeout: timeout,
		},
		Delivery: &config.DeliveryConfig{
			Provider:  "telegram",
			WebAppURL: testWebAppURL,
		},
	}
}

// kmNorth returns the latitude reached by moving km due north along a meridian.
func kmNorth(lat, km float64) float64 {
	return lat + km/(geo.EarthRadiusKm*math.Pi/180)
}

func newTestPoint() *entity.Point {
	return &entity.Point{
		ID:          501,
		Latitude:    dniproCenter.lat,
		Longitude:   dniproCenter.lon,
		Description: "Unexploded ordnance near the bridge",
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func cursorOf(v int64) *int64 {
	return &v
}
