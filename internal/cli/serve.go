package cli

import (
	"fmt"
	"net"
	"os"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ferndale/jobboard-mcp/internal/config"
	"github.com/ferndale/jobboard-mcp/internal/mcp"
	"github.com/ferndale/jobboard-mcp/pkg/logging"
	"github.com/ferndale/jobboard-mcp/pkg/shutdown"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("transport", "", "MCP transport, http or stdio")
	serveCmd.Flags().String("host", "", "listen host for the http transport")
	serveCmd.Flags().String("port", "", "listen port for the http transport")
	serveCmd.Flags().String("source-url", "", "URL of the remote job document")

	for flag, key := range map[string]string{
		"transport":  "transport",
		"host":       "host",
		"port":       "port",
		"source-url": "source.url",
	} {
		if err := viper.BindPFlag(key, serveCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func serve() error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	res, err := mcp.InitializeResources(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		return err
	}

	srv, err := mcp.NewServer(logger, cfg, res)
	if err != nil {
		logger.Error("failed to build MCP server", "err", err)
		return err
	}

	go shutdown.Graceful(
		[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
		srv,
		10*time.Second,
		logger,
	)

	logger.Info("MCP server initialized and starting",
		"addr", net.JoinHostPort(cfg.Host, cfg.Port),
		"transport", cfg.Transport,
		"source_url", cfg.Source.URL,
	)

	if err := srv.Run(); err != nil {
		logger.Error("MCP server exited with error", "err", err)
		return err
	}

	logger.Info("MCP server stopped")
	return nil
}
