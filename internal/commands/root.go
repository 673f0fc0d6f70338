package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/csv2bean-dev/csv2bean/internal/buildinfo"
	"github.com/csv2bean-dev/csv2bean/internal/config"
	"github.com/csv2bean-dev/csv2bean/internal/convert"
)

// NewRootCommand creates the CLI command. There are no subcommands: the
// root command performs the conversion.
func NewRootCommand() *cobra.Command {
	var csvPath string
	var configPath string

	rootCmd := &cobra.Command{
		Use:     "csv2bean",
		Short:   "Convert transactions in CSV to beancount format",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), csvPath, configPath)
		},
	}

	rootCmd.Flags().StringVarP(&csvPath, "csv", "c", "", "path to the CSV transactions file (required)")
	_ = rootCmd.MarkFlagRequired("csv")
	rootCmd.Flags().StringVarP(&configPath, "config", "y", "", "path to the YAML config file (required)")
	_ = rootCmd.MarkFlagRequired("config")

	return rootCmd
}

func runConvert(w io.Writer, csvPath, configPath string) error {
	f, err := config.Load(configPath)
	if err != nil {
		return err
	}

	in, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("opening CSV: %w", err)
	}
	defer in.Close()

	return convert.New(f).Run(in, w)
}
