package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
	"github.com/cloud-ru/mcp-mortgage-go/internal/config"
	"github.com/cloud-ru/mcp-mortgage-go/internal/metrics"
	"github.com/cloud-ru/mcp-mortgage-go/internal/validators"
)

const (
	ToolSchedule    = "payment_schedule"
	ToolTotalAmount = "total_amount"
	ToolCompare     = "compare_schemes"
)

// Calculator выполняет расчеты по запросу: валидация, расчет, метрики и трейсинг
type Calculator struct {
	cfg    *config.Config
	tracer trace.Tracer
	logger *slog.Logger
}

// NewCalculator создает Calculator
func NewCalculator(cfg *config.Config, tracer trace.Tracer, logger *slog.Logger) *Calculator {
	return &Calculator{cfg: cfg, tracer: tracer, logger: logger}
}

// Schedule рассчитывает график платежей
func (c *Calculator) Schedule(ctx context.Context, req calculations.MortgageRequest) (*calculations.PaymentSchedule, error) {
	ctx, span := c.tracer.Start(ctx, ToolSchedule)
	defer span.End()

	terms, err := c.prepare(ctx, span, ToolSchedule, req)
	if err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.CalculationDuration.WithLabelValues(ToolSchedule))
	schedule, err := terms.BuildSchedule()
	timer.ObserveDuration()
	if err != nil {
		return nil, c.fail(ctx, span, ToolSchedule, err)
	}

	metrics.ScheduleLength.Observe(float64(len(schedule.Entries)))
	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("payments", len(schedule.Entries)),
	)
	c.succeed(ToolSchedule)

	return schedule, nil
}

// TotalAmount рассчитывает общую сумму выплат
func (c *Calculator) TotalAmount(ctx context.Context, req calculations.MortgageRequest) (float64, error) {
	ctx, span := c.tracer.Start(ctx, ToolTotalAmount)
	defer span.End()

	terms, err := c.prepare(ctx, span, ToolTotalAmount, req)
	if err != nil {
		return 0, err
	}

	timer := prometheus.NewTimer(metrics.CalculationDuration.WithLabelValues(ToolTotalAmount))
	total, err := terms.TotalAmount()
	timer.ObserveDuration()
	if err != nil {
		return 0, c.fail(ctx, span, ToolTotalAmount, err)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Float64("total_amount", total),
	)
	c.succeed(ToolTotalAmount)

	return total, nil
}

// Compare сравнивает аннуитетную и дифференцированную схемы
func (c *Calculator) Compare(ctx context.Context, req calculations.MortgageRequest) (*calculations.ComparisonResult, error) {
	ctx, span := c.tracer.Start(ctx, ToolCompare)
	defer span.End()

	terms, err := c.prepare(ctx, span, ToolCompare, req)
	if err != nil {
		return nil, err
	}

	timer := prometheus.NewTimer(metrics.CalculationDuration.WithLabelValues(ToolCompare))
	result, err := calculations.CompareSchemes(terms)
	timer.ObserveDuration()
	if err != nil {
		return nil, c.fail(ctx, span, ToolCompare, err)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.String("cheaper_scheme", result.CheaperScheme),
		attribute.Float64("savings", result.Savings),
	)
	c.succeed(ToolCompare)

	return result, nil
}

func (c *Calculator) prepare(ctx context.Context, span trace.Span, toolName string,
	req calculations.MortgageRequest) (calculations.MortgageTerms, error) {

	terms := req.Terms()

	span.SetAttributes(
		attribute.Int64("amount", terms.Principal),
		attribute.Float64("mortgage_rate", terms.AnnualRatePercent),
		attribute.Int("period", terms.TermYears),
		attribute.String("taking_date", terms.OriginationDate),
		attribute.String("payment_type", string(terms.PaymentScheme)),
		attribute.Int64("initial_payment", terms.DownPayment),
	)

	metrics.APICalls.WithLabelValues("http", toolName, "started").Inc()

	if err := validators.CheckTerms(c.cfg, terms); err != nil {
		return terms, c.fail(ctx, span, toolName, err)
	}
	return terms, nil
}

func (c *Calculator) succeed(toolName string) {
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues("http", toolName, "success").Inc()
}

func (c *Calculator) fail(ctx context.Context, span trace.Span, toolName string, err error) error {
	errorType := ErrorType(err)

	span.SetAttributes(attribute.String("error", errorType))
	span.SetStatus(codes.Error, err.Error())
	metrics.ToolCalls.WithLabelValues(toolName, errorType).Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, errorType).Inc()
	metrics.APICalls.WithLabelValues("http", toolName, "error").Inc()

	c.logger.WarnContext(ctx, "calculation failed",
		"tool", toolName,
		"error_type", errorType,
		"error", err,
	)

	if errorType == "calculation" {
		return fmt.Errorf("ошибка при выполнении расчета: %w", err)
	}
	return fmt.Errorf("неверные параметры: %w", err)
}

// ErrorType классифицирует ошибку для метрик и HTTP ответа
func ErrorType(err error) string {
	switch {
	case errors.Is(err, calculations.ErrInvalidDateFormat):
		return "date_format"
	case errors.Is(err, calculations.ErrUnrecognizedPaymentScheme):
		return "payment_scheme"
	case errors.Is(err, calculations.ErrInvalidTerms):
		return "validation"
	default:
		return "calculation"
	}
}
