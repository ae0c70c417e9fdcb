package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mcpv/episcreen/internal/config"
	"github.com/mcpv/episcreen/internal/dataset"
	"github.com/mcpv/episcreen/internal/diagnosis"
	"github.com/mcpv/episcreen/internal/logging"
	"github.com/mcpv/episcreen/internal/metrics"
	"github.com/mcpv/episcreen/internal/report"
	"github.com/mcpv/episcreen/internal/screening"
	"github.com/mcpv/episcreen/internal/store"
	"github.com/mcpv/episcreen/internal/ui/theme"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score a patient roster and report agreement",
	RunE:  runPipeline,
}

func init() {
	runCmd.Flags().StringP("responses", "r", "", "Path to patient responses JSON (required)")
	runCmd.Flags().StringP("codes", "c", "", "Path to billing codes JSON (required)")
	runCmd.Flags().StringP("out", "o", "outputs", "Output directory for matrices and metrics")
	runCmd.Flags().String("config", "", "Optional YAML config (thresholds, code sets)")
	runCmd.Flags().Bool("no-store", false, "Skip recording the run in the history ledger")
	_ = runCmd.MarkFlagRequired("responses")
	_ = runCmd.MarkFlagRequired("codes")
}

func runPipeline(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger, err := logging.New(verbose)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	responsesPath, _ := cmd.Flags().GetString("responses")
	codesPath, _ := cmd.Flags().GetString("codes")
	outDir, _ := cmd.Flags().GetString("out")

	roster, codes, err := loadInputs(logger, responsesPath, codesPath)
	if err != nil {
		return err
	}

	flagNames, flagMatrix, predicted, truth := score(cfg, roster, codes)
	logger.Info("pipeline complete",
		zap.Int("patients", roster.Len()),
		zap.Int("flags", len(flagNames)),
	)

	rep, err := metrics.Compute(flagNames, flagMatrix, predicted, truth)
	if err != nil {
		return err
	}

	if err := report.Write(outDir, flagNames, flagMatrix, predicted, truth, rep); err != nil {
		return err
	}
	logger.Info("outputs written", zap.String("dir", outDir))

	if noStore, _ := cmd.Flags().GetBool("no-store"); !noStore {
		if err := recordRun(cmd, rep); err != nil {
			logger.Warn("run not recorded", zap.Error(err))
		}
	}

	printSummary(cmd, rep)
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// loadInputs loads and validates both documents, then runs the
// preflight checks. Any failure aborts before the core runs.
func loadInputs(logger *zap.Logger, responsesPath, codesPath string) (*dataset.Roster, dataset.CodeTable, error) {
	roster, err := dataset.LoadResponses(responsesPath)
	if err != nil {
		return nil, nil, err
	}
	codes, err := dataset.LoadCodes(codesPath)
	if err != nil {
		return nil, nil, err
	}
	if err := dataset.Check(roster, codes, screening.DefaultQuestionSet()); err != nil {
		return nil, nil, fmt.Errorf("preflight check: %w", err)
	}
	logger.Info("inputs validated", zap.Int("patients", roster.Len()))
	return roster, codes, nil
}

// score runs the three pipeline stages over the roster.
func score(cfg *config.Config, roster *dataset.Roster, codes dataset.CodeTable) ([]string, [][]screening.Value, []diagnosis.Vector, []diagnosis.Vector) {
	norm := screening.NewNormalizer()
	flags := screening.ScreeningFlags(norm)
	if cfg.ExtendedFlags {
		flags = screening.ExtendedFlags(norm)
	}
	eval := screening.NewEvaluator(norm, screening.DefaultQuestionSet())
	extractor := screening.NewExtractor(eval, flags)

	flagMatrix := extractor.ExtractAll(roster.Ordered())
	predicted := diagnosis.NewFlagClassifier(cfg.DiagnosisThresholds()).ClassifyAll(flagMatrix)
	truth := diagnosis.NewCodeClassifier(cfg.CodeSets()).ClassifyAll(codes.Ordered(roster.IDs()))

	return extractor.Names(), flagMatrix, predicted, truth
}

func recordRun(cmd *cobra.Command, rep *metrics.Report) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return err
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer st.Close()

	_, err = st.SaveRun(cmd.Context(), rep)
	return err
}

func printSummary(cmd *cobra.Command, rep *metrics.Report) {
	out := cmd.OutOrStdout()
	acc := rep.Performance.Accuracy

	accStyle := theme.Bad
	switch {
	case acc.Fraction >= 0.8:
		accStyle = theme.Good
	case acc.Fraction >= 0.5:
		accStyle = theme.Caution
	}

	fmt.Fprintln(out, theme.Title.Render("episcreen — run summary"))
	fmt.Fprintf(out, "%s %s\n",
		theme.Label.Render("patients:"),
		theme.Value.Render(fmt.Sprintf("%d", rep.Summary.Patients)))
	fmt.Fprintf(out, "%s %s / %s / %s\n",
		theme.Label.Render("predicted (ind/non-ep/ep):"),
		theme.Value.Render(fmt.Sprintf("%d", rep.Counts.Diagnoses.Predicted["indeterminate"])),
		theme.Value.Render(fmt.Sprintf("%d", rep.Counts.Diagnoses.Predicted["non_epilepsy"])),
		theme.Value.Render(fmt.Sprintf("%d", rep.Counts.Diagnoses.Predicted["epilepsy"])))
	fmt.Fprintf(out, "%s %s / %s / %s\n",
		theme.Label.Render("true      (ind/non-ep/ep):"),
		theme.Value.Render(fmt.Sprintf("%d", rep.Counts.Diagnoses.True["indeterminate"])),
		theme.Value.Render(fmt.Sprintf("%d", rep.Counts.Diagnoses.True["non_epilepsy"])),
		theme.Value.Render(fmt.Sprintf("%d", rep.Counts.Diagnoses.True["epilepsy"])))
	fmt.Fprintf(out, "%s %s (%d/%d decisive)\n",
		theme.Label.Render("accuracy:"),
		accStyle.Render(fmt.Sprintf("%.3f", acc.Fraction)),
		acc.Correct, acc.Decisive)
	fmt.Fprintf(out, "%s %s\n",
		theme.Label.Render("balanced accuracy:"),
		accStyle.Render(fmt.Sprintf("%.3f", rep.Performance.BalancedAccuracy)))
}
