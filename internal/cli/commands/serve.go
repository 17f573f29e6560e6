package commands

import (
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dugout-labs/rotodash/internal/ui"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Host      string
	Port      int
	NoBrowser bool
	NoWatch   bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the rotodash dashboard",
		Long: `Start a local web server providing the roster dashboard.

The dashboard provides:
- Hitter and pitcher tables with sortable stat columns
- Team filter across all loaded exports
- Z-score auction prices
- Load history
- Live refresh when the database file changes`,
		Example: `  # Start on default port
  rotodash serve

  # Start on custom port
  rotodash serve --port 3000

  # Start without auto-opening browser
  rotodash serve --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Host, "host", "", "Host to bind (default: all interfaces)")
	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.NoWatch, "no-watch", false, "Don't refresh the dashboard when the database changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	uiCfg := cmdCtx.Cfg.GetUIConfig()

	// CLI flags override config file
	host := uiCfg.Host
	if opts.Host != "" {
		host = opts.Host
	}

	port := uiCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := uiCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := uiCfg.Watch
	if opts.NoWatch {
		watch = false
	}

	server := ui.NewServer(ui.Config{
		Engine:        cmdCtx.Engine,
		Host:          host,
		Port:          port,
		Watch:         watch,
		SessionSecret: sessionSecret(uiCfg.SessionSecret),
		Logger:        cmdCtx.Logger,
	})

	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Starting dashboard on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Serve(ctx)
}

// sessionSecret resolves the cookie-signing secret. Config wins, then the
// environment, then a fixed development default.
func sessionSecret(fromConfig string) string {
	if fromConfig != "" {
		return fromConfig
	}
	if secret := os.Getenv("ROTODASH_SESSION_SECRET"); secret != "" {
		return secret
	}
	return "rotodash-dev-secret-change-in-production" //nolint:gosec
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
