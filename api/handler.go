package api

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"

	"cpusched/config"
	"cpusched/internal/core"
	"cpusched/internal/parser"
	"cpusched/internal/report"
	"cpusched/internal/requests"
	"cpusched/internal/responses"
	"cpusched/internal/schedulers"
)

// ErrRunForTooLarge is returned for runs longer than the configured limit.
var ErrRunForTooLarge = errors.New("run duration exceeds the allowed maximum")

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	ParseDescription(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyFCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicyRoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, core.PolicySRTF)
}

// AllAlgorithms runs every policy on the same processes. Round-robin uses
// the request quantum or the configured default.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	all := make(map[string]responses.ScheduleResponse, 3)
	for _, policy := range []core.Policy{
		core.PolicyFCFS,
		core.PolicySRTF,
		core.PolicyRoundRobin,
	} {
		response, err := s.run(request, policy)
		if err != nil {
			return badRequest(ctx, err.Error())
		}
		all[policy.String()] = response
	}

	return ctx.JSON(all)
}

// ParseDescription runs a text description posted as the request body. With
// ?format=text the text report is returned instead of JSON.
func (s *SchedulerHandlerImpl) ParseDescription(ctx *fiber.Ctx) error {
	input, err := parser.Parse(bytes.NewReader(ctx.Body()))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	simConfig := input.Config
	simConfig.FillHorizon = simConfig.FillHorizon || s.config.FillHorizon

	if err := s.checkRunFor(simConfig.RunFor); err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := schedulers.Simulate(simConfig, input.Processes)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if ctx.Query("format") == "text" {
		ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
		return ctx.SendString(report.Format(result))
	}

	return ctx.JSON(schedulers.GenerateResponse(result))
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, policy core.Policy) error {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return badRequest(ctx, "invalid request format")
	}

	response, err := s.run(request, policy)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) run(
	request *requests.ScheduleRequests,
	policy core.Policy,
) (responses.ScheduleResponse, error) {
	simConfig := request.Config(policy, s.config.RoundRobinTimeQuantum)
	simConfig.FillHorizon = simConfig.FillHorizon || s.config.FillHorizon

	if err := s.checkRunFor(simConfig.RunFor); err != nil {
		return responses.ScheduleResponse{}, err
	}

	result, err := schedulers.Simulate(simConfig, request.Processes())
	if err != nil {
		log.Println("rejected", policy, "request:", err)
		return responses.ScheduleResponse{}, err
	}

	return schedulers.GenerateResponse(result), nil
}

// checkRunFor bounds the work one request can cause. The simulator steps
// through idle time one unit at a time.
func (s *SchedulerHandlerImpl) checkRunFor(runFor int) error {
	if s.config.MaxRunFor > 0 && runFor > s.config.MaxRunFor {
		return fmt.Errorf("%w: %d > %d", ErrRunForTooLarge, runFor, s.config.MaxRunFor)
	}

	return nil
}

func badRequest(ctx *fiber.Ctx, message string) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(responses.ErrorResponse{Error: message})
}
