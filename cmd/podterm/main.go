package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Taishi66/podterm/internal/cache"
	"github.com/Taishi66/podterm/internal/config"
	"github.com/Taishi66/podterm/internal/domain"
	"github.com/Taishi66/podterm/internal/k8s"
	"github.com/Taishi66/podterm/internal/session"
	"github.com/Taishi66/podterm/internal/tui"
)

var version = "dev"

const connectTimeout = 5 * time.Second

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type options struct {
	configPath string
	namespace  string
	logFile    string
	logLevel   string
}

func newRootCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "podterm",
		Short:         "Live pod health and container shells for Kubernetes/OKD",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		RunE: func(*cobra.Command, []string) error {
			return run(opts)
		},
	}
	cmd.SetVersionTemplate("podterm {{.Version}}\n")

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "path to the config file (default ~/.config/podterm/config.yaml)")
	f.StringVarP(&opts.namespace, "namespace", "n", "", "namespace to open instead of the kubeconfig one")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options) (*config.AppConfig, error) {
	var (
		cfg *config.AppConfig
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadConfigFrom(opts.configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		return nil, err
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

// setupLogging installs the default slog logger. The TUI owns the terminal,
// so without a log file records are discarded.
func setupLogging(cfg config.LogConfig) (io.Closer, error) {
	var (
		w      io.Writer = io.Discard
		closer io.Closer = io.NopCloser(nil)
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	slog.SetDefault(slog.New(h))
	return closer, nil
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	closer, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	factory := newGatewayFactory(cfg, opts.namespace)
	sessions := session.NewCache(cfg.Sessions.Capacity, cfg.Sessions.TTL, slog.Default())

	var m tui.Model
	gw, err := factory()
	if err != nil {
		slog.Error("Cluster client unavailable.", "err", err)
		m = tui.NewModelWithError(err, factory, sessions, cfg)
	} else {
		slog.Info("Starting.", "version", version, "context", gw.GetContext(), "namespace", gw.GetNamespace())
		m = tui.NewModel(gw, factory, sessions, cfg)
	}

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// newGatewayFactory builds cached cluster gateways. It is also used to
// retry from the startup error screen.
func newGatewayFactory(cfg *config.AppConfig, namespace string) tui.ClientFactory {
	return func() (domain.KubeGateway, error) {
		client, err := k8s.NewClient()
		if err != nil {
			return nil, err
		}
		if namespace != "" {
			client.SetNamespace(namespace)
		}
		if err := checkConnection(client); err != nil {
			return nil, err
		}
		return cache.NewCachedGateway(client, cfg.Cache), nil
	}
}

type connectionTester interface {
	TestConnection(ctx context.Context) error
}

// checkConnection fails fast when the API server cannot be reached, so the
// startup error screen is shown instead of a failing first list.
func checkConnection(c connectionTester) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := c.TestConnection(ctx); err != nil {
		slog.Warn("Connection check failed.", "err", err)
		return err
	}
	return nil
}
