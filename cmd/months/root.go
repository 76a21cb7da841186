package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rabitt1ove/months"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	log        *zap.Logger
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	a := &app{v: newViper(), log: zap.NewNop()}

	root := &cobra.Command{
		Use:           "months",
		Short:         "month arithmetic and month spans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: months.* in . or $HOME/.config/months)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log at debug level")
	root.PersistentFlags().String("tz", "", "IANA time zone used by current (default UTC)")
	a.v.BindPFlag(keyTimezone, root.PersistentFlags().Lookup("tz"))

	root.AddCommand(
		a.currentCmd(),
		a.addCmd(),
		a.subCmd(),
		a.betweenCmd(),
		a.periodCmd(),
		a.rangeCmd(),
		a.shiftCmd(),
		a.withinCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	used, err := loadConfig(a.v, a.configFile)
	if err != nil {
		return err
	}
	level := a.v.GetString(keyLogLevel)
	if a.verbose {
		level = "debug"
	}
	log, err := newLogger(cmd.ErrOrStderr(), level)
	if err != nil {
		return err
	}
	a.log = log.With(zap.String("cmd", cmd.Name()))
	if used != "" {
		a.log.Debug("loaded config", zap.String("file", used))
	}
	return nil
}

func (a *app) currentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "print the current month in the configured time zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			zone := a.v.GetString(keyTimezone)
			a.log.Debug("resolving current month", zap.String("zone", zone))
			m, err := months.Current(zone)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
}

func (a *app) addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add YYYY-MM N",
		Short: "add N months (N may be negative)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, n, err := parseMonthCount(args)
			if err != nil {
				return err
			}
			res, err := m.Add(n)
			if err != nil {
				return err
			}
			a.log.Debug("add", zap.Stringer("month", m), zap.Int("n", n), zap.Stringer("result", res))
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
	// Stop flag parsing at the month so a negative count is not read as a flag.
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) subCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub YYYY-MM N",
		Short: "subtract N months (N must be positive)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, n, err := parseMonthCount(args)
			if err != nil {
				return err
			}
			res, err := m.Sub(n)
			if err != nil {
				return err
			}
			a.log.Debug("sub", zap.Stringer("month", m), zap.Int("n", n), zap.Stringer("result", res))
			fmt.Fprintln(cmd.OutOrStdout(), res)
			return nil
		},
	}
}

func (a *app) betweenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "between YYYY-MM YYYY-MM",
		Short: "print the signed number of months from the first month to the second",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseMonthPair(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), months.MonthsBetween(from, to))
			return nil
		},
	}
}

func (a *app) periodCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "period YYYY-MM YYYY-MM",
		Short: "list every month between two months in either order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseMonthPair(args)
			if err != nil {
				return err
			}
			p := months.NewPeriod(from, to)
			a.log.Debug("period", zap.Stringer("span", p), zap.Int("len", p.Len()))
			printSpan(cmd, p)
			return nil
		},
	}
}

func (a *app) rangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "range YYYY-MM YYYY-MM",
		Short: "list every month from the first month to a strictly later second month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseMonthPair(args)
			if err != nil {
				return err
			}
			r, err := months.NewRange(from, to)
			if err != nil {
				return err
			}
			a.log.Debug("range", zap.Stringer("span", r), zap.Int("len", r.Len()))
			printSpan(cmd, r)
			return nil
		},
	}
}

func (a *app) shiftCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "shift YYYY-MM/YYYY-MM N",
		Short: "move a span by N months",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("count %q: %w", args[1], err)
			}
			var shifted fmt.Stringer
			if strict {
				r, err := months.ParseRange(args[0])
				if err != nil {
					return err
				}
				if shifted, err = r.Shift(n); err != nil {
					return err
				}
			} else {
				p, err := months.ParsePeriod(args[0])
				if err != nil {
					return err
				}
				if shifted, err = p.Shift(n); err != nil {
					return err
				}
			}
			a.log.Debug("shift", zap.String("span", args[0]), zap.Int("n", n), zap.Bool("strict", strict))
			fmt.Fprintln(cmd.OutOrStdout(), shifted)
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "treat the span as a strict range")
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func (a *app) withinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "within YYYY-MM[-DD]|YYYY-MM/YYYY-MM YYYY-MM/YYYY-MM",
		Short: "report whether a date, month or span lies within a span",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outer, err := months.ParsePeriod(args[1])
			if err != nil {
				return err
			}
			var ok bool
			if strings.Contains(args[0], "/") {
				inner, err := months.ParsePeriod(args[0])
				if err != nil {
					return err
				}
				ok = months.SpanWithin(inner, outer)
			} else {
				v, err := parseDateOrMonth(args[0])
				if err != nil {
					return err
				}
				ok = months.Within(v, outer)
			}
			a.log.Debug("within", zap.String("inner", args[0]), zap.Stringer("outer", outer), zap.Bool("result", ok))
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}
}

func printSpan(cmd *cobra.Command, s months.Span) {
	w := cmd.OutOrStdout()
	for _, m := range s.Months() {
		fmt.Fprintln(w, m)
	}
}

func parseMonthCount(args []string) (months.Month, int, error) {
	m, err := months.Parse(args[0])
	if err != nil {
		return months.Month{}, 0, err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil {
		return months.Month{}, 0, fmt.Errorf("count %q: %w", args[1], err)
	}
	return m, n, nil
}

func parseMonthPair(args []string) (months.Month, months.Month, error) {
	from, err := months.Parse(args[0])
	if err != nil {
		return months.Month{}, months.Month{}, err
	}
	to, err := months.Parse(args[1])
	if err != nil {
		return months.Month{}, months.Month{}, err
	}
	return from, to, nil
}

// parseDateOrMonth accepts a full YYYY-MM-DD date or a bare YYYY-MM month.
func parseDateOrMonth(s string) (months.YearMonther, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return months.Parse(s)
}
