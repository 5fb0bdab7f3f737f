package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/san-kum/hmcsim/internal/config"
	"github.com/san-kum/hmcsim/internal/dynamo"
	"github.com/san-kum/hmcsim/internal/experiment"
	"github.com/san-kum/hmcsim/internal/export"
	"github.com/san-kum/hmcsim/internal/logging"
	"github.com/san-kum/hmcsim/internal/metrics"
	"github.com/san-kum/hmcsim/internal/target"
	"github.com/san-kum/hmcsim/internal/viz"
)

type globalFlags struct {
	logLevel  string
	prettyLog bool
	logOut    io.Writer
}

type sampleFlags struct {
	samples    int
	stepSize   float64
	numSteps   int
	x, y       float64
	seed       uint64
	format     string
	configFile string
	preset     string
}

type compareFlags struct {
	samples  int
	numSteps int
	x, y     float64
	seed     uint64
}

type energyFlags struct {
	x, y      float64
	px, py    float64
	totalTime float64
	baseSteps int
	levels    int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:          "hmcsim",
		Short:        "hamiltonian monte carlo sampler for 2d test densities",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level (debug, info, warn, error, off)")
	rootCmd.PersistentFlags().BoolVar(&g.prettyLog, "pretty-log", false, "human readable logs on stderr")

	rootCmd.AddCommand(
		newSampleCmd(g),
		newCompareCmd(g),
		newEnergyCmd(),
		newPresetsCmd(),
	)
	return rootCmd
}

func (g *globalFlags) logger(cmd *cobra.Command, cfg *config.Config) zerolog.Logger {
	lc := logging.Config{Level: g.logLevel, Pretty: g.prettyLog, Out: g.logOut}
	if cfg != nil {
		if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
			lc.Level = cfg.Log.Level
		}
		if !cmd.Flags().Changed("pretty-log") {
			lc.Pretty = cfg.Log.Pretty
		}
	}
	return logging.New(lc)
}

func newSampleCmd(g *globalFlags) *cobra.Command {
	f := &sampleFlags{}

	cmd := &cobra.Command{
		Use:   "sample [target]",
		Short: "run one chain and print its samples",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, args, g, f)
		},
	}
	cmd.Flags().IntVar(&f.samples, "samples", config.DefaultSamples, "number of samples")
	cmd.Flags().Float64Var(&f.stepSize, "step-size", config.DefaultStepSize, "leapfrog step size")
	cmd.Flags().IntVar(&f.numSteps, "steps", config.DefaultNumSteps, "leapfrog steps per proposal")
	cmd.Flags().Float64Var(&f.x, "x", 0, "start x")
	cmd.Flags().Float64Var(&f.y, "y", 0, "start y")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "random seed (random when unset)")
	cmd.Flags().StringVar(&f.format, "format", "summary", "output format (summary, json, msgpack, csv)")
	cmd.Flags().StringVar(&f.configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&f.preset, "preset", "", "use preset configuration")
	return cmd
}

// resolveSampleConfig layers preset, config file and explicitly set flags,
// in that order.
func resolveSampleConfig(cmd *cobra.Command, args []string, f *sampleFlags) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if len(args) > 0 {
		cfg.Target = args[0]
	}

	if f.preset != "" {
		p := config.GetPreset(cfg.Target, f.preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", f.preset, config.ListPresets(cfg.Target))
		}
		cfg = p
	}

	if f.configFile != "" {
		loaded, err := config.Load(f.configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
		if len(args) > 0 {
			cfg.Target = args[0]
		}
	}

	flags := cmd.Flags()
	if flags.Changed("samples") {
		cfg.Samples = f.samples
	}
	if flags.Changed("step-size") {
		cfg.StepSize = f.stepSize
	}
	if flags.Changed("steps") {
		cfg.NumSteps = f.numSteps
	}
	if flags.Changed("x") {
		cfg.Start.X = f.x
	}
	if flags.Changed("y") {
		cfg.Start.Y = f.y
	}
	if flags.Changed("seed") {
		seed := f.seed
		cfg.Seed = &seed
	}

	return cfg, cfg.Validate()
}

func runSample(cmd *cobra.Command, args []string, g *globalFlags, f *sampleFlags) error {
	cfg, err := resolveSampleConfig(cmd, args, f)
	if err != nil {
		return err
	}

	var format export.Format
	if f.format != "summary" {
		if format, err = export.ParseFormat(f.format); err != nil {
			return err
		}
	}

	log := g.logger(cmd, cfg)
	exp, err := experiment.New(cfg, log)
	if err != nil {
		return err
	}

	out, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if format != "" {
		return export.Write(w, format, out.Result)
	}

	_, err = fmt.Fprintln(w, viz.RenderSummary(viz.SummaryInput{
		Target:   exp.Variant().String(),
		Seed:     out.Seed,
		StepSize: cfg.StepSize,
		NumSteps: cfg.NumSteps,
		Summary:  out.Summary,
		Metrics:  out.Result.Metrics,
	}))
	return err
}

func newCompareCmd(g *globalFlags) *cobra.Command {
	f := &compareFlags{}

	cmd := &cobra.Command{
		Use:   "compare [target] [step sizes...]",
		Short: "compare acceptance across step sizes with a shared seed",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			cfg.Target = args[0]
			cfg.Samples = f.samples
			cfg.NumSteps = f.numSteps
			cfg.Start = config.StartConfig{X: f.x, Y: f.y}
			seed := f.seed
			cfg.Seed = &seed

			if _, err := cfg.Variant(); err != nil {
				return err
			}

			stepSizes := make([]float64, 0, len(args)-1)
			for _, a := range args[1:] {
				h, err := strconv.ParseFloat(a, 64)
				if err != nil {
					return fmt.Errorf("invalid step size %q: %w", a, err)
				}
				stepSizes = append(stepSizes, h)
			}

			results := experiment.CompareStepSizes(cmd.Context(), cfg, stepSizes, g.logger(cmd, nil))

			rows := make([]viz.ComparisonRow, len(results))
			for i, r := range results {
				rows[i] = viz.ComparisonRow{StepSize: r.StepSize, Err: r.Err}
				if r.Outcome != nil {
					rows[i].Rate = r.Outcome.Result.AcceptanceRate
					rows[i].MeanX = r.Outcome.Summary.Mean.X
					rows[i].MeanY = r.Outcome.Summary.Mean.Y
					rows[i].TimeMs = float64(r.Outcome.Elapsed.Microseconds()) / 1000
				}
			}

			_, err := fmt.Fprint(cmd.OutOrStdout(), viz.RenderComparison(args[0], rows))
			return err
		},
	}
	cmd.Flags().IntVar(&f.samples, "samples", 200, "samples per chain")
	cmd.Flags().IntVar(&f.numSteps, "steps", config.DefaultNumSteps, "leapfrog steps per proposal")
	cmd.Flags().Float64Var(&f.x, "x", 0, "start x")
	cmd.Flags().Float64Var(&f.y, "y", 0, "start y")
	cmd.Flags().Uint64Var(&f.seed, "seed", 42, "random seed shared by every chain")
	return cmd
}

func newEnergyCmd() *cobra.Command {
	f := &energyFlags{}

	cmd := &cobra.Command{
		Use:   "energy [target]",
		Short: "measure leapfrog energy error while halving the step size",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := target.ParseVariant(args[0])
			if err != nil {
				return err
			}
			if f.baseSteps <= 0 || f.levels <= 0 || !(f.totalTime > 0) {
				return &dynamo.ArgumentError{Name: "sweep", Reason: "time, base-steps and levels must be positive"}
			}

			levels := metrics.EnergySweep(variant,
				dynamo.Vec{X: f.x, Y: f.y},
				dynamo.Vec{X: f.px, Y: f.py},
				f.totalTime, f.baseSteps, f.levels)

			_, err = fmt.Fprint(cmd.OutOrStdout(), viz.PlotEnergySweep(variant.String(), levels))
			return err
		},
	}
	cmd.Flags().Float64Var(&f.x, "x", 1.0, "start x")
	cmd.Flags().Float64Var(&f.y, "y", 1.0, "start y")
	cmd.Flags().Float64Var(&f.px, "px", 0.5, "initial momentum x")
	cmd.Flags().Float64Var(&f.py, "py", -0.3, "initial momentum y")
	cmd.Flags().Float64Var(&f.totalTime, "time", 2.0, "total simulated time")
	cmd.Flags().IntVar(&f.baseSteps, "base-steps", 20, "steps at the coarsest level")
	cmd.Flags().IntVar(&f.levels, "levels", 5, "number of step-size halvings")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [target]",
		Short: "list available presets for a target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Fprintf(w, "no presets for target: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Fprintf(w, "presets for %s:\n", args[0])
			for _, p := range presets {
				c := config.GetPreset(args[0], p)
				fmt.Fprintf(w, "  %-10s samples=%d step_size=%g steps=%d start=(%g, %g)\n",
					p, c.Samples, c.StepSize, c.NumSteps, c.Start.X, c.Start.Y)
			}
			return nil
		},
	}
}
