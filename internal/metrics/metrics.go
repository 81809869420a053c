package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов расчетов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_tool_calls_total",
			Help: "Общее количество вызовов расчетов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls счетчик HTTP запросов
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortgage_api_calls_total",
			Help: "HTTP запросы к API",
		},
		[]string{"service", "endpoint", "status"},
	)

	// CalculationDuration длительность расчетов
	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mortgage_calculation_duration_seconds",
			Help:    "Длительность расчетов",
			Buckets: prometheus.ExponentialBuckets(0.00005, 4, 8),
		},
		[]string{"tool_name"},
	)

	// ScheduleLength число платежей в построенных графиках
	ScheduleLength = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortgage_schedule_payments",
			Help:    "Число платежей в графике",
			Buckets: []float64{12, 60, 120, 180, 240, 360, 480, 600},
		},
	)

	// RateLimited счетчик запросов, отклоненных ограничителем частоты
	RateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mortgage_rate_limited_total",
			Help: "Запросы, отклоненные ограничителем частоты",
		},
	)
)
