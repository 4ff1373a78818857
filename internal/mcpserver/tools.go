package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/phasewise/internal/conflict"
	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/alexanderramin/phasewise/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type GenerateArgs struct {
	Input  contract.HormonalAgentInput `json:"input" jsonschema:"description=Cycle day, symptoms, goals, fixed and variable activities, preferences"`
	Date   string                      `json:"date,omitempty" jsonschema:"description=First day of the 7-day horizon (YYYY-MM-DD). Defaults to today"`
	Accept bool                        `json:"accept,omitempty" jsonschema:"description=Store the plan as the user's schedule when it has no conflicts"`
}

type ConflictArgs struct {
	Schedule []domain.ScheduledTask `json:"schedule,omitempty" jsonschema:"description=Entries to check. When empty the stored schedule is checked"`
}

type PhaseArgs struct {
	CycleDay       int    `json:"cycle_day,omitempty" jsonschema:"description=Cycle day. When zero the day is derived from last_period_date or the stored snapshot"`
	LastPeriodDate string `json:"last_period_date,omitempty" jsonschema:"description=First day of the last period (YYYY-MM-DD)"`
	CycleLength    int    `json:"cycle_length,omitempty" jsonschema:"description=Cycle length in days, default 28"`
}

type generateResult struct {
	Plan      *contract.HormonalAgentResponse `json:"plan"`
	Schedule  []domain.ScheduledTask          `json:"schedule"`
	Conflicts []domain.ScheduleConflict       `json:"conflicts"`
	Accepted  bool                            `json:"accepted"`
}

type conflictResult struct {
	Conflicts    []domain.ScheduleConflict `json:"conflicts"`
	HasConflicts bool                      `json:"hasConflicts"`
}

type phaseResult struct {
	CycleDay     int                `json:"cycleDay"`
	Phase        domain.CyclePhase  `json:"phase"`
	Subtitle     string             `json:"subtitle"`
	Description  string             `json:"description"`
	Energy       domain.EnergyLevel `json:"energy"`
	DayStartHour int                `json:"dayStartHour"`
}

// RegisterTools adds generate_schedule, find_conflicts and cycle_phase to s.
func RegisterTools(s *server.MCPServer, t *Tools) {
	s.AddTool(mcp.NewTool("generate_schedule",
		mcp.WithDescription(`Generate a 7-day activity plan that follows the user's cycle phase.

Variable activities are placed in free slots around fixed commitments. High-intensity
activities are declined on low-energy days and reported under unscheduledActivities.
With accept=true the plan is stored as the user's schedule unless it conflicts.`),
		mcp.WithInputSchema[GenerateArgs](),
	), wrapGenerate(t))

	s.AddTool(mcp.NewTool("find_conflicts",
		mcp.WithDescription(`Find overlapping entries in a schedule.

Returns clusters of same-day entries whose time windows overlap. Back-to-back entries
do not conflict.`),
		mcp.WithInputSchema[ConflictArgs](),
	), wrapFindConflicts(t))

	s.AddTool(mcp.NewTool("cycle_phase",
		mcp.WithDescription(`Look up the cycle phase of a day and its energy profile.`),
		mcp.WithInputSchema[PhaseArgs](),
	), wrapCyclePhase(t))
}

func wrapGenerate(t *Tools) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args GenerateArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		ref := t.today()
		if args.Date != "" {
			d, err := time.Parse(domain.DateFormat, args.Date)
			if err != nil {
				return mcp.NewToolResultError("date must be YYYY-MM-DD"), nil
			}
			ref = d
		}

		plan, err := t.Plans.Generate(ctx, contract.NewGenerateRequest(args.Input, ref))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		preview, err := t.Plans.Preview(ctx, plan)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		res := generateResult{Plan: plan, Schedule: preview.Schedule, Conflicts: preview.Conflicts}
		if args.Accept {
			_, err := t.Plans.Accept(ctx, t.UserID, args.Input.CycleDay, preview.Schedule)
			var ce *service.ConflictError
			switch {
			case errors.As(err, &ce):
				res.Conflicts = ce.Conflicts
			case err != nil:
				return mcp.NewToolResultError(err.Error()), nil
			default:
				res.Accepted = true
			}
		}
		return jsonResult(res)
	}
}

func wrapFindConflicts(t *Tools) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args ConflictArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		schedule := args.Schedule
		if len(schedule) == 0 {
			snap, err := t.Plans.Snapshot(ctx, t.UserID)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			schedule = snap.Schedule
		}

		conflicts := conflict.FindConflicts(schedule)
		if conflicts == nil {
			conflicts = []domain.ScheduleConflict{}
		}
		return jsonResult(conflictResult{Conflicts: conflicts, HasConflicts: len(conflicts) > 0})
	}
}

func wrapCyclePhase(t *Tools) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args PhaseArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		day := args.CycleDay
		switch {
		case day != 0:
		case args.LastPeriodDate != "":
			lp, err := time.Parse(domain.DateFormat, args.LastPeriodDate)
			if err != nil {
				return mcp.NewToolResultError("last_period_date must be YYYY-MM-DD"), nil
			}
			day = cycle.DayFromLastPeriod(lp, t.today(), args.CycleLength)
		default:
			snap, err := t.Plans.Snapshot(ctx, t.UserID)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			day = t.Plans.CycleDay(snap, t.today())
		}

		phase := cycle.PhaseOf(day)
		return jsonResult(phaseResult{
			CycleDay:     cycle.Normalize(day),
			Phase:        phase,
			Subtitle:     cycle.Subtitle(phase),
			Description:  cycle.Description(phase),
			Energy:       cycle.EnergyFor(phase),
			DayStartHour: cycle.DayStartHour(phase),
		})
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
