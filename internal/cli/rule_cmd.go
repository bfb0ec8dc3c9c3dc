package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/midoradev/study-planner/internal/cli/formatter"
	"github.com/midoradev/study-planner/internal/domain"
	"github.com/spf13/cobra"
)

var weekdayNames = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

func parseWeekday(s string) (time.Weekday, error) {
	if d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d, nil
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// parseClock converts "HH:MM" to minutes from midnight. "24:00" is
// accepted as the end-of-day boundary.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", s)
	}
	h, err1 := strconv.Atoi(parts[0])
	m, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("invalid time %q, use HH:MM", s)
	}
	return h*60 + m, nil
}

func newRuleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rule",
		Short: "Manage weekly availability windows",
	}

	cmd.AddCommand(
		newRuleAddCmd(app),
		newRuleListCmd(app),
		newRuleRemoveCmd(app),
	)

	return cmd
}

func newRuleAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add WEEKDAY START END",
		Short: "Add a free-time window (e.g. rule add mon 18:00 20:00)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := parseWeekday(args[0])
			if err != nil {
				return err
			}
			start, err := parseClock(args[1])
			if err != nil {
				return err
			}
			end, err := parseClock(args[2])
			if err != nil {
				return err
			}

			r, err := app.Rules.Add(context.Background(), day, start, end)
			if err != nil {
				return err
			}
			fmt.Printf("Added %s %s-%s\n", r.Weekday,
				domain.FormatClock(r.StartMin), domain.FormatClock(r.EndMin))
			return nil
		},
	}
}

func newRuleListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List availability windows",
		RunE: func(cmd *cobra.Command, args []string) error {
			rules, err := app.Rules.List(context.Background())
			if err != nil {
				return err
			}
			if len(rules) == 0 {
				fmt.Println("No availability yet. Add one: studyplan rule add mon 18:00 20:00")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatRuleList(rules))
			return nil
		},
	}
}

func newRuleRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Delete an availability window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			rules, err := app.Rules.List(ctx)
			if err != nil {
				return err
			}
			var matches []string
			for _, r := range rules {
				if r.ID == args[0] || strings.HasPrefix(r.ID, args[0]) {
					matches = append(matches, r.ID)
				}
			}
			switch len(matches) {
			case 0:
				return fmt.Errorf("rule not found: %q", args[0])
			case 1:
			default:
				return fmt.Errorf("rule ID prefix %q is ambiguous (%d matches)", args[0], len(matches))
			}
			if err := app.Rules.Delete(ctx, matches[0]); err != nil {
				return err
			}
			fmt.Println("Rule removed.")
			return nil
		},
	}
}
