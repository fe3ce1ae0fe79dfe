package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const metricPrefix = "maintenance_"

var (
	registerOnce sync.Once

	httpRequests *prometheus.CounterVec
	httpLatency  *prometheus.HistogramVec

	reportBuilds  *prometheus.CounterVec
	reportLatency *prometheus.HistogramVec
)

// Init регистрирует метрики сервиса. Повторные вызовы безопасны.
func Init() {
	registerOnce.Do(func() {
		httpRequests = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"route", "status"},
		)
		httpLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "http_request_latency_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		)
		reportBuilds = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_builds_total",
				Help: "Total report builds by report and result",
			},
			[]string{"report", "result"},
		)
		reportLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_build_latency_seconds",
				Help:    "Report build latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		)

		prometheus.MustRegister(httpRequests, httpLatency, reportBuilds, reportLatency)
	})
}

// ObserveReport фиксирует длительность и результат сборки отчёта.
func ObserveReport(report string, start time.Time, err error) {
	if reportBuilds == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	reportBuilds.WithLabelValues(report, result).Inc()
	reportLatency.WithLabelValues(report).Observe(time.Since(start).Seconds())
}

// HTTPMiddleware считает запросы и время ответа по маршрутам.
func HTTPMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if httpRequests == nil {
				return next(c)
			}
			start := time.Now()
			err := next(c)

			route := c.Path()
			httpRequests.WithLabelValues(route, strconv.Itoa(c.Response().Status)).Inc()
			httpLatency.WithLabelValues(route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
