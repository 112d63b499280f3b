package middlewares

import (
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

// unmatchedPath labels the requests not matching any route so unknown paths
// do not create new series.
const unmatchedPath = "?"

// MetricsMiddleware records the duration and the status of every request.
// Handler errors are rendered here so the status is known when observed.
func MetricsMiddleware(histogram *prometheus.HistogramVec, counter *prometheus.CounterVec, logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			duration := time.Since(start)
			method := c.Request().Method
			path := c.Path()
			response := c.Response()
			if response == nil {
				logger.Error(fmt.Sprintf("no response in metrics middleware for %s %s", method, path))
				return nil
			}
			if path == "" || response.Status == 404 {
				path = unmatchedPath
			}
			status := strconv.Itoa(response.Status)
			histogram.With(prometheus.Labels{"method": method, "path": path}).Observe(duration.Seconds())
			counter.With(prometheus.Labels{"method": method, "status": status, "path": path}).Inc()
			logger.Debug(fmt.Sprintf("%s %s %s in %s (request %s)", method, c.Request().URL.Path, status, duration, response.Header().Get(echo.HeaderXRequestID)))
			return nil
		}
	}
}
