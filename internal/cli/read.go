package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harun/logtail/internal/app"
)

var readLines int

var readCmd = &cobra.Command{
	Use:   "read <file>",
	Short: "Print the last lines of a file",
	Long: `Read the tail of a file once and print it.
The file is scanned backward in partitions until enough lines are found,
so only the end of a large file is read.`,
	Args: cobra.ExactArgs(1),
	RunE: runRead,
}

func init() {
	rootCmd.AddCommand(readCmd)

	readCmd.Flags().IntVarP(&readLines, "lines", "n", 0, "number of lines to print (default from config)")
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, cfg.Logging.Console)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	want := readLines
	if want <= 0 {
		want = cfg.Tail.MinLines
	}

	lines, err := app.ReadOnce(cfg, log, args[0], want)
	if err != nil {
		return err
	}

	for _, line := range lines {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}

	return nil
}
