package collect

import (
	"fmt"
	"os"
	"time"

	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/adb"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/config"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/prompt"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/report"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/route"
	"github.com/jlh28145/ADB-Bug-Report-Generator/internal/stage"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagNumRecent  int
	flagSimplified bool
	flagConfig     string
	flagAdb        string
	flagOut        string
)

// Cmd represents the `adbreport collect` command.
var Cmd = &cobra.Command{
	Use:           "collect",
	Short:         "Collect diagnostic artifacts from a device into a timestamped incident report",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(cmd)
	},
}

func init() {
	Cmd.Flags().IntVarP(&flagNumRecent, "num-recent-files", "n", 5, "Number of recent files to pull per source")
	Cmd.Flags().BoolVarP(&flagSimplified, "simplified", "s", false, "Generate a simplified report (skip full directory pulls)")
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to collection profile (.cue)")
	Cmd.Flags().StringVar(&flagAdb, "adb", "", `Path to the adb executable (default "adb", env ADBREPORT_ADB)`)
	Cmd.Flags().StringVarP(&flagOut, "out", "o", "", `Incident reports directory (default "incident_reports", env ADBREPORT_OUT)`)
}

func runCollect(cmd *cobra.Command) error {
	// A .env alongside the binary may seed the environment overrides.
	_ = godotenv.Load()

	profile := config.Default()
	if flagConfig != "" {
		p, err := config.Load(flagConfig)
		if err != nil {
			return err
		}
		profile = p
	}
	program := firstNonEmpty(flagAdb, os.Getenv("ADBREPORT_ADB"), profile.Bridge.Program)
	outDir := firstNonEmpty(flagOut, os.Getenv("ADBREPORT_OUT"), "incident_reports")

	rep, err := report.NewContext(outDir, time.Now())
	if err != nil {
		return err
	}
	bridge := &adb.Runner{
		Program:        program,
		CommandTimeout: time.Duration(profile.Bridge.TimeoutMs) * time.Millisecond,
		Trace:          cmd.OutOrStdout(),
	}
	deps := stage.Deps{
		Bridge: bridge,
		Prompt: prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		Report: rep,
		Routes: route.ForReport(rep),
		Out:    cmd.OutOrStdout(),
		Err:    cmd.ErrOrStderr(),
	}
	env := stage.Envelope{
		Meta: &stage.Meta{
			Profile:    profile,
			NumRecent:  flagNumRecent,
			Simplified: flagSimplified,
		},
		Sources: profile.RecentSources,
	}

	out, err := executePipeline(cmd.Context(), env, deps)
	if err != nil {
		return err
	}
	if len(out.Errors) > 0 {
		fmt.Fprintf(deps.Err, "Completed with %d item(s) skipped.\n", len(out.Errors))
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
