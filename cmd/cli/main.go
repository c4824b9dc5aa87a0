package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"bizstats/domain/scenario"
	"bizstats/internal/config"
	"bizstats/internal/container"
	"bizstats/internal/errors"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "bizstats-cli",
		Short: "Business statistics CLI: simulate, estimate, test and decide",
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newListCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

// reportError prefixes application errors with their code
func reportError(w io.Writer, err error) {
	if errors.IsAppError(err) {
		fmt.Fprintf(w, "[%s] %v\n", errors.GetCode(err), err)
		return
	}
	fmt.Fprintln(w, err)
}

type runOptions struct {
	seed       int64
	confidence float64
	alpha      float64
	format     string
	xlsx       string
	preview    int
	engine     string
}

func newRunCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run <" + strings.Join(scenario.Keys(), "|") + "|all>",
		Short: "Run one scenario, or all of them in order",
		Long: `Run a scenario pipeline: draw the seeded sample, compute the confidence
interval, run the two-sided test and print the business decision.

Defaults are the scenario constants; flags override them for this run only.

Example: bizstats-cli run delivery --confidence 0.99 --format markdown`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.Wrapf(runScenarios(cmd, opts, args[0]), "run %s", args[0])
		},
	}

	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Override the scenario seed")
	cmd.Flags().Float64Var(&opts.confidence, "confidence", scenario.DefaultConfidence, "Confidence level for the interval")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", scenario.DefaultAlpha, "Significance level for the test")
	cmd.Flags().StringVar(&opts.format, "format", config.FormatText, "Report format: "+strings.Join(config.SupportedFormats, ", "))
	cmd.Flags().StringVar(&opts.xlsx, "xlsx", "", "Also export the runs to this .xlsx file")
	cmd.Flags().IntVar(&opts.preview, "preview", scenario.DefaultPreview, "Number of leading sample values to print")
	cmd.Flags().StringVar(&opts.engine, "engine", config.EngineLegacy, "Sampling engine: "+strings.Join(config.SupportedEngines, ", "))

	return cmd
}

func runScenarios(cmd *cobra.Command, opts runOptions, name string) error {
	scenarios, err := selectScenarios(name)
	if err != nil {
		return err
	}
	for i := range scenarios {
		if cmd.Flags().Changed("seed") {
			scenarios[i] = scenarios[i].WithSeed(opts.seed)
		}
		if cmd.Flags().Changed("confidence") {
			scenarios[i] = scenarios[i].WithConfidence(opts.confidence)
		}
		if cmd.Flags().Changed("alpha") {
			scenarios[i] = scenarios[i].WithAlpha(opts.alpha)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Report.Format = strings.ToLower(opts.format)
	}
	if cmd.Flags().Changed("xlsx") {
		cfg.Report.XLSXPath = opts.xlsx
	}
	if cmd.Flags().Changed("preview") {
		cfg.Report.Preview = opts.preview
	}
	if cmd.Flags().Changed("engine") {
		cfg.Sampling.Engine = strings.ToLower(opts.engine)
	}

	c, err := container.New(cfg)
	if err != nil {
		return err
	}
	_, err = c.Execute(cmd.Context(), cmd.OutOrStdout(), scenarios)
	return err
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, key := range scenario.Keys() {
				sc, err := scenario.Lookup(key)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-11s %-8s n=%-3d seed=%-4d %s\n", key, sc.Family, sc.Size, sc.Seed, sc.Question)
			}
			return nil
		},
	}
}

func selectScenarios(name string) ([]scenario.Scenario, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return scenario.All(), nil
	}
	sc, err := scenario.Lookup(name)
	if err != nil {
		return nil, err
	}
	return []scenario.Scenario{sc}, nil
}
