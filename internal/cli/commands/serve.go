package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/calculator/internal/config"
	"github.com/zephyrtronium/calculator/internal/server"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator HTTP API",
		Long: `Start an HTTP server that evaluates expressions.

POST /api/calculator/evaluate accepts {"expression": "..."} and responds with
the value, or with a problem document describing why the expression is
invalid. The server shuts down gracefully on interrupt.`,
		Example: `  calc serve --addr :8080`,
		Args:    cobra.NoArgs,
		RunE:    runServe,
	}
	cmd.Flags().String("addr", "", "address to listen on (default 127.0.0.1:5000)")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.GetConfig(ctx)
	srv := server.New(server.Config{
		Addr:            cfg.Server.Addr,
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Logger:          config.GetLogger(ctx),
	})
	return srv.Serve(ctx)
}
