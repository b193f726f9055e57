package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"exifgraft/core"
)

const version = "0.1.0"

var (
	flagJSON    bool
	flagVerbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "exifgraft",
		Short:   "Inspect, extract and graft EXIF metadata between images",
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
			initLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Emit JSON instead of text")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newViewCmd(),
		newCloneCmd(),
		newOrientCmd(),
		newDetectCmd(),
		newFormatsCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		core.PrintError(err.Error())
		os.Exit(1)
	}
}

// initLogging routes slog through a stderr text handler. Debug level comes
// from --verbose or EXIFGRAFT_DEBUG in the environment.
func initLogging() {
	level := slog.LevelInfo
	if flagVerbose || os.Getenv("EXIFGRAFT_DEBUG") != "" {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			if attr.Key == slog.SourceKey {
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}

			return attr
		},
	})))
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
