package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
	"schedsim/internal/stats"
)

const requestIDHeader = "X-Request-ID"

type SchedulerHandler interface {
	Simulate(ctx *fiber.Ctx) error
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	engine   *schedulers.Engine
	recorder *stats.Recorder
	logger   *zap.Logger
}

func NewSchedulerHandlerImpl(engine *schedulers.Engine, recorder *stats.Recorder, logger *zap.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{engine: engine, recorder: recorder, logger: logger}
}

// NewApp builds the fiber application with every route registered.
func NewApp(handler SchedulerHandler, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "schedsim",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestID())
	app.Use(accessLog(logger))

	app.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Post("/simulate", handler.Simulate)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/stats", handler.Stats)
	}
	return app
}

func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe.String())
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin.String())
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst.String())
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.Priority.String())
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	response, err := s.engine.Compare(request.Jobs, s.engine.Quantum(request.Quantum))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) Stats(ctx *fiber.Ctx) error {
	if s.recorder == nil {
		return ctx.JSON(fiber.Map{"metrics": []stats.Metric{}})
	}
	return ctx.JSON(fiber.Map{"metrics": s.recorder.Snapshot()})
}

// schedule runs one simulation. A non-empty algorithm overrides the body.
func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, ok := s.parseRequest(ctx)
	if !ok {
		return nil
	}
	if algorithm == "" {
		algorithm = request.Algorithm
	}
	if strings.TrimSpace(algorithm) == "" {
		algorithm = schedulers.DefaultAlgorithm
	}

	response, err := s.engine.Simulate(request.Jobs, algorithm, s.engine.Quantum(request.Quantum))
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, bool) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		s.logger.Info("invalid request body", zap.String("request_id", requestIDFrom(ctx)), zap.Error(err))
		_ = ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: "invalid request format"})
		return nil, false
	}
	return request, true
}

func writeError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusBadRequest
	switch {
	case errors.Is(err, schedulers.ErrTooManyProcesses), errors.Is(err, schedulers.ErrTimelineTooLong):
		status = fiber.StatusRequestEntityTooLarge
	case errors.Is(err, schedulers.ErrUnknownAlgorithm),
		errors.Is(err, schedulers.ErrInvalidBurst),
		errors.Is(err, schedulers.ErrInvalidQuantum),
		errors.Is(err, schedulers.ErrTimeOverflow):
	default:
		status = fiber.StatusInternalServerError
	}
	return ctx.Status(status).JSON(responses.ErrorResponse{Error: err.Error()})
}

func requestID() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// fiber reuses header buffers after the handler returns
		id := strings.Clone(ctx.Get(requestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		ctx.Locals(requestIDHeader, id)
		ctx.Set(requestIDHeader, id)
		return ctx.Next()
	}
}

func requestIDFrom(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(requestIDHeader).(string)
	return id
}

// responseStatus is the status the client will see. Errors returned from a
// handler are only turned into a response by the error handler after the
// middleware chain unwinds.
func responseStatus(ctx *fiber.Ctx, err error) int {
	if err == nil {
		return ctx.Response().StatusCode()
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}

func accessLog(logger *zap.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()
		logger.Info("request",
			zap.String("request_id", requestIDFrom(ctx)),
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.Int("status", responseStatus(ctx, err)),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err))
		return err
	}
}
