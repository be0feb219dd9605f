package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harun/logtail/internal/app"
)

var followPlain bool

var followCmd = &cobra.Command{
	Use:   "follow <file>",
	Short: "Follow a file in a live viewer",
	Long: `Open a full screen viewer on the tail of a file and keep it current.
A file system watch triggers a re-read on every change, and the wanted
line count tracks the viewer height. With --plain, appended lines are
printed to standard output instead of opening the viewer.`,
	Args: cobra.ExactArgs(1),
	RunE: runFollow,
}

func init() {
	rootCmd.AddCommand(followCmd)

	followCmd.Flags().BoolVar(&followPlain, "plain", false, "print appended lines instead of opening the viewer")
}

func runFollow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Console logging would corrupt the viewer, so it is plain mode only
	console := cfg.Logging.Console && followPlain
	log, err := newLogger(cfg, console)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	runtime, err := app.New(cfg, log, app.Options{
		Path:  args[0],
		Plain: followPlain,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runtime.Run(ctx)
}
