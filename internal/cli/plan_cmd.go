package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/alexanderramin/phasewise/internal/cli/formatter"
	"github.com/alexanderramin/phasewise/internal/contract"
	"github.com/alexanderramin/phasewise/internal/cycle"
	"github.com/alexanderramin/phasewise/internal/domain"
	"github.com/alexanderramin/phasewise/internal/logger"
	"github.com/alexanderramin/phasewise/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type planOptions struct {
	inputPath   string
	cycleDay    int
	symptoms    []string
	goals       []string
	fixed       []string
	activities  []string
	intensity   string
	hours       float64
	date        dateValue
	accept      bool
	asJSON      bool
	interactive bool
}

func addPlanFlags(fs *pflag.FlagSet, o *planOptions) {
	fs.StringVarP(&o.inputPath, "input", "i", "", "Plan input file (YAML or JSON)")
	fs.IntVar(&o.cycleDay, "cycle-day", 0, "Cycle day 1-28 (default: derived from the stored snapshot)")
	fs.StringSliceVar(&o.symptoms, "symptom", nil, "Reported symptom, repeatable (e.g. fatigue, cramps, \"dolor de cabeza\")")
	fs.StringSliceVar(&o.goals, "goal", nil, "Goal, repeatable (e.g. stress-reduction)")
	fs.StringArrayVar(&o.fixed, "fixed", nil, "Fixed commitment \"title,HH:MM,hours\", repeatable")
	fs.StringArrayVar(&o.activities, "activity", nil, "Flexible activity \"title,category[,hours[,time of day]]\", repeatable")
	fs.StringVar(&o.intensity, "intensity", "", "Preferred intensity: low, medium or high")
	fs.Float64Var(&o.hours, "hours", 0, "Hours available per day")
	fs.Var(&o.date, "date", "First day of the plan, YYYY-MM-DD (default: today)")
	fs.BoolVar(&o.accept, "accept", false, "Store the plan as your schedule when it has no conflicts")
	fs.BoolVar(&o.asJSON, "json", false, "Print the plan as JSON")
	fs.BoolVar(&o.interactive, "interactive", false, "Fill in the plan input with a form")
}

func newPlanCmd(app *App) *cobra.Command {
	var opts planOptions

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate a 7-day plan that follows your cycle phase",
		Example: `  phasewise plan --input week.yaml
  phasewise plan --cycle-day 3 --symptom fatigue --fixed "Work,09:00,8" --activity "Yoga,wellness,1" --activity "Gym,fitness"
  phasewise plan --interactive --accept`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ref := opts.date.orToday(app.today())

			input, err := buildPlanInput(cmd.Flags(), &opts)
			if err != nil {
				return err
			}
			if opts.interactive {
				if !app.interactive() {
					return errors.New("--interactive needs a terminal")
				}
				if err := runPlanForm(&input); err != nil {
					return err
				}
			}
			if input.CycleDay == 0 {
				snap, err := app.Plans.Snapshot(ctx, app.UserID)
				if err != nil {
					return err
				}
				input.CycleDay = app.Plans.CycleDay(snap, ref)
			}

			resp, err := app.Plans.Generate(ctx, contract.NewGenerateRequest(input, ref))
			if err != nil {
				return err
			}
			preview, err := app.Plans.Preview(ctx, resp)
			if err != nil {
				return err
			}
			logger.Debug("plan generated", "cycle_day", input.CycleDay, "activities", len(resp.Activities))

			out := cmd.OutOrStdout()
			if opts.asJSON {
				if err := writeJSON(out, resp); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatter.FormatPlan(resp, input.CycleDay, planPhase(input)))
				if len(preview.Conflicts) > 0 {
					fmt.Fprint(out, "\n"+formatter.FormatConflicts(preview.Conflicts))
				}
			}

			if !opts.accept {
				return nil
			}
			return acceptPlan(cmd, app, input.CycleDay, preview)
		},
	}

	addPlanFlags(cmd.Flags(), &opts)
	return cmd
}

// buildPlanInput starts from --input when given and applies the other
// flags over it.
func buildPlanInput(fs *pflag.FlagSet, o *planOptions) (contract.HormonalAgentInput, error) {
	var in contract.HormonalAgentInput
	if o.inputPath != "" {
		loaded, err := loadInputFile(o.inputPath)
		if err != nil {
			return in, err
		}
		in = loaded
	}

	if fs.Changed("cycle-day") {
		if o.cycleDay < 1 || o.cycleDay > domain.DefaultCycleLength {
			return in, fmt.Errorf("--cycle-day must be between 1 and %d", domain.DefaultCycleLength)
		}
		in.CycleDay = o.cycleDay
		in.HormonalPhase = ""
	}
	for _, s := range o.symptoms {
		in.Symptoms = append(in.Symptoms, domain.ParseSymptom(s))
	}
	for _, g := range o.goals {
		in.Goals = append(in.Goals, domain.ParseGoal(g))
	}
	for _, f := range o.fixed {
		a, err := parseFixed(f)
		if err != nil {
			return in, err
		}
		in.FixedActivities = append(in.FixedActivities, a)
	}
	for _, s := range o.activities {
		a, err := parseActivity(s)
		if err != nil {
			return in, err
		}
		in.VariableActivities = append(in.VariableActivities, a)
	}
	if o.intensity != "" {
		v, ok := domain.ParseIntensity(o.intensity)
		if !ok {
			return in, fmt.Errorf("--intensity must be low, medium or high")
		}
		in.Preferences.Intensity = v
	}
	if fs.Changed("hours") {
		in.Preferences.TimeAvailability = o.hours
	}
	return in, nil
}

func planPhase(in contract.HormonalAgentInput) domain.CyclePhase {
	if cycle.Valid(in.HormonalPhase) {
		return in.HormonalPhase
	}
	return cycle.PhaseOf(in.CycleDay)
}

func acceptPlan(cmd *cobra.Command, app *App, cycleDay int, preview *service.Preview) error {
	out := cmd.OutOrStdout()
	snap, err := app.Plans.Accept(cmd.Context(), app.UserID, cycleDay, preview.Schedule)
	var ce *service.ConflictError
	if errors.As(err, &ce) {
		fmt.Fprint(out, "\n"+formatter.FormatConflicts(ce.Conflicts))
		return fmt.Errorf("plan not saved: %w", err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.StyleGreen.Render(
		fmt.Sprintf("✔ Saved %d entries (%d in schedule)", len(preview.Schedule), len(snap.Schedule))))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
