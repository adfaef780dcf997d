package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/supakorn-kn/book-catalog/env"
	"github.com/supakorn-kn/book-catalog/logger"
	"github.com/supakorn-kn/book-catalog/models/books"
	"github.com/supakorn-kn/book-catalog/server"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(env.New()).ExecuteContext(ctx); err != nil {
		slog.Error("book-catalog failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {

	var configFile string

	cmd := &cobra.Command{
		Use:           "book-catalog",
		Short:         "Serve the book catalog web UI and JSON API",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {

			config, err := loadEnv(v, configFile)
			if err != nil {
				return err
			}

			return serve(cmd.Context(), config)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configFile, "config", "", fmt.Sprintf("YAML config file (can also use %s)", env.ConfigFileVar))
	flags.IntP("port", "p", env.DefaultPort, "port to listen on")
	flags.String("log-format", "text", "log format (text, json)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")

	bindFlags(v, flags)

	return cmd
}

// bindFlags lets explicitly set flags win over env and config file values.
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {

	for key, name := range map[string]string{
		"server.port": "port",
		"log.format":  "log-format",
		"log.level":   "log-level",
	} {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func loadEnv(v *viper.Viper, configFile string) (*env.Env, error) {

	if configFile == "" {
		configFile = os.Getenv(env.ConfigFileVar)
	}

	return env.GetEnv(v, configFile)
}

func serve(ctx context.Context, config *env.Env) error {

	gin.SetMode(config.Server.Mode)

	log := logger.New(config.Log, os.Stderr)
	slog.SetDefault(log)

	registry := books.NewRegistry()
	g := server.SetupRoutes(registry, log)

	return server.Run(ctx, config.Server, g, log)
}
