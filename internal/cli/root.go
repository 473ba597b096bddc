package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"jobmatch/internal/logger"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "matchctl"

// Actual version can be specified in build command.
var version = "unknown"

type runtime struct {
	v      *viper.Viper
	out    io.Writer
	logger *zap.Logger
}

// NewRootCommand builds the offline scoring CLI. Results are written to out
// as JSON; logs go to stderr.
func NewRootCommand(out io.Writer) *cobra.Command {
	rt := &runtime{v: viper.New(), out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:           app,
		Short:         "matchctl scores candidate profiles against job postings and grades interview transcripts offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			format := "console"
			if rt.v.GetBool("json") {
				format = "json"
			}
			level := "warn"
			if rt.v.GetBool("debug") {
				level = "debug"
			}
			l, err := logger.New(level, format)
			if err != nil {
				return fmt.Errorf("creating a logger: %w", err)
			}
			rt.logger = l
			return nil
		},
	}

	root.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	root.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	root.PersistentFlags().Bool("pretty", false, "indent JSON output")
	_ = rt.v.BindPFlag("debug", root.PersistentFlags().Lookup("debug"))
	_ = rt.v.BindPFlag("json", root.PersistentFlags().Lookup("json"))
	_ = rt.v.BindPFlag("pretty", root.PersistentFlags().Lookup("pretty"))

	root.AddCommand(
		newMatchCommand(rt),
		newInterviewCommand(rt),
		newOptionsCommand(rt),
		newVersionCommand(rt),
	)
	return root
}

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCommand(os.Stdout).Execute()
}

func (rt *runtime) write(v any) error {
	enc := json.NewEncoder(rt.out)
	if rt.v.GetBool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func readJSONFile(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func newVersionCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(rt.out, "%s version: %s\n", app, version)
			return err
		},
	}
}
