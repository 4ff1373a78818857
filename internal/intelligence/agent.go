package intelligence

import (
	"context"
	"fmt"

	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/alexanderramin/phasewise/internal/llm"
	"github.com/alexanderramin/phasewise/internal/scheduler"
	"github.com/charmbracelet/log"
)

// ScheduleAgent produces a weekly plan for a request.
type ScheduleAgent interface {
	Generate(ctx context.Context, req contract.GenerateRequest) (*contract.HormonalAgentResponse, error)
}

type scheduleAgent struct {
	client llm.LLMClient
	logger *log.Logger
}

// NewScheduleAgent creates a ScheduleAgent. With a nil client every request
// is served by the rule-based generator. An unreachable server, a model
// failure or an unusable candidate also falls back to it.
func NewScheduleAgent(client llm.LLMClient, logger *log.Logger) ScheduleAgent {
	if logger == nil {
		logger = log.Default()
	}
	return &scheduleAgent{client: client, logger: logger}
}

// NewRuleBasedAgent returns the agent used when no model is configured.
func NewRuleBasedAgent() ScheduleAgent {
	return NewScheduleAgent(nil, nil)
}

func (a *scheduleAgent) Generate(ctx context.Context, req contract.GenerateRequest) (*contract.HormonalAgentResponse, error) {
	input := req.Input
	if input.CycleDay < 1 || input.CycleDay > cycle.ModelLength {
		return nil, &contract.AgentError{
			Code:    contract.ErrInvalidCycleDay,
			Message: fmt.Sprintf("cycle day %d is outside 1..%d", input.CycleDay, cycle.ModelLength),
		}
	}
	if a.client == nil {
		return scheduler.Generate(input, req.ReferenceDate)
	}

	if !a.client.Available(ctx) {
		a.logger.Warn("model server unreachable, using rule-based plan", "err", llm.ErrOllamaUnavailable)
		return scheduler.Generate(input, req.ReferenceDate)
	}

	phase := inputPhase(input)
	resp, err := a.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskSchedule,
		SystemPrompt: scheduleSystemPrompt,
		UserPrompt:   buildSchedulePrompt(input, phase, req.ReferenceDate.Format(domain.DateFormat)),
	})
	if err != nil {
		a.logger.Warn("model unavailable, using rule-based plan", "err", err)
		return scheduler.Generate(input, req.ReferenceDate)
	}

	result := Normalize(input, resp.Text, req.ReferenceDate)
	if !result.OK() {
		a.logger.Warn("discarding model plan", "err", result.Err, "model", resp.Model)
		return scheduler.Generate(input, req.ReferenceDate)
	}
	a.logger.Debug("model plan accepted", "activities", len(result.Response.Activities), "latency_ms", resp.LatencyMs)
	return result.Response, nil
}
