package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/attribute"

	"os-project/config"
	"os-project/internal/bankers"
	"os-project/internal/core"
	"os-project/internal/observability"
	"os-project/internal/requests"
	"os-project/internal/responses"
	"os-project/internal/schedulers"
)

type SchedulerHandler interface {
	Health(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	RateMonotonic(ctx *fiber.Ctx) error
	EarliestDeadlineFirst(ctx *fiber.Ctx) error
	BankersSafety(ctx *fiber.Ctx) error
	BankersRequest(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.aperiodic(ctx, core.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.aperiodic(ctx, core.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.aperiodic(ctx, core.Priority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.aperiodic(ctx, core.RoundRobin)
}

func (s *SchedulerHandlerImpl) RateMonotonic(ctx *fiber.Ctx) error {
	return s.periodic(ctx, core.RateMonotonic)
}

func (s *SchedulerHandlerImpl) EarliestDeadlineFirst(ctx *fiber.Ctx) error {
	return s.periodic(ctx, core.EarliestDeadline)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	processes, err := request.Processes(false)
	if err != nil {
		return fail(ctx, err)
	}

	spanCtx, span := observability.StartSpan(ctx.UserContext(), "schedule.compare",
		attribute.Int("processes", len(processes)))
	defer span.End()

	outputs, err := schedulers.CompareAperiodic(spanCtx, processes, s.options()...)
	if err != nil {
		span.RecordError(err)
		return fail(ctx, err)
	}
	response := make(map[string]responses.ScheduleResponse, len(outputs))
	for _, output := range outputs {
		response[string(output.Algorithm)] = responses.NewScheduleResponse(output)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) BankersSafety(ctx *fiber.Ctx) error {
	var request requests.BankersRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	state, err := request.State()
	if err != nil {
		return fail(ctx, err)
	}

	_, span := observability.StartSpan(ctx.UserContext(), "bankers.safety",
		attribute.Int("processes", len(state.Processes)),
		attribute.Int("resources", len(state.Available)))
	defer span.End()

	output, err := bankers.CheckSafety(state)
	if err != nil {
		span.RecordError(err)
		return fail(ctx, err)
	}
	span.SetAttributes(attribute.Bool("safe", output.Safe))
	return ctx.JSON(responses.NewSafetyResponse(output, request.ResourceTypes))
}

func (s *SchedulerHandlerImpl) BankersRequest(ctx *fiber.Ctx) error {
	var request requests.BankersRequest
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	state, err := request.State()
	if err != nil {
		return fail(ctx, err)
	}

	_, span := observability.StartSpan(ctx.UserContext(), "bankers.request",
		attribute.String("process", request.Process))
	defer span.End()

	output, err := bankers.EvaluateRequest(state, request.Process, request.Request)
	if err != nil {
		span.RecordError(err)
		return fail(ctx, err)
	}
	span.SetAttributes(attribute.Bool("granted", output.Granted))
	if len(output.Warnings) > 0 {
		slog.Info("request rejected", "process", request.Process, "warnings", output.Warnings)
	}
	return ctx.JSON(responses.NewRequestResponse(output, request.ResourceTypes))
}

func (s *SchedulerHandlerImpl) aperiodic(ctx *fiber.Ctx, algorithm core.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	processes, err := request.Processes(false)
	if err != nil {
		return fail(ctx, err)
	}

	_, span := observability.StartSpan(ctx.UserContext(), "schedule.aperiodic",
		attribute.String("algorithm", string(algorithm)),
		attribute.Int("processes", len(processes)))
	defer span.End()

	output, err := schedulers.RunAperiodic(processes, algorithm, s.options()...)
	if err != nil {
		span.RecordError(err)
		return fail(ctx, err)
	}
	return ctx.JSON(responses.NewScheduleResponse(output))
}

func (s *SchedulerHandlerImpl) periodic(ctx *fiber.Ctx, algorithm core.Algorithm) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return invalidRequestFormat(ctx)
	}
	tasks, err := request.Processes(true)
	if err != nil {
		return fail(ctx, err)
	}

	_, span := observability.StartSpan(ctx.UserContext(), "schedule.periodic",
		attribute.String("algorithm", string(algorithm)),
		attribute.Int("tasks", len(tasks)))
	defer span.End()

	output, err := schedulers.RunPeriodic(tasks, algorithm, s.options()...)
	if err != nil {
		span.RecordError(err)
		return fail(ctx, err)
	}
	span.SetAttributes(attribute.Int("hyperperiod", output.Hyperperiod))
	return ctx.JSON(responses.NewPeriodicResponse(output))
}

func (s *SchedulerHandlerImpl) options() []schedulers.Option {
	if s.config == nil {
		return nil
	}
	return []schedulers.Option{
		schedulers.WithTimeQuantum(s.config.RoundRobinTimeQuantum),
		schedulers.WithMaxHyperperiod(s.config.MaxHyperperiod),
	}
}

func invalidRequestFormat(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request format"})
}

func fail(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, core.ErrInvalidInput) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	slog.Error("can not process request", "path", ctx.Path(), "error", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
