package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/logger"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	root := &cobra.Command{
		Use:          "portfolio",
		Short:        "Personal portfolio site",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	}
	if err := bindFlags(v, root.PersistentFlags()); err != nil {
		panic(err)
	}

	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the site over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), v)
		},
	}

	root.AddCommand(serve, newSkillsCmd())
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	flags.Int("port", 8080, "HTTP port")
	flags.String("db-path", "portfolio.db", "SQLite file for visitor analytics")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "fmt", "log format (fmt, json)")
	flags.Bool("tracking", true, "record privacy-conscious visitor analytics")

	for _, name := range []string{"port", "db-path", "log-level", "log-format", "tracking"} {
		if err := v.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name)); err != nil {
			return errors.Wrapf(err, "failed to bind flag %s", name)
		}
	}
	return nil
}

func runServe(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		logger.L.WithError(err).Error("failed to load configuration")
		return err
	}

	if err := logger.SetLogLevel(cfg.LogLevel); err != nil {
		logger.L.WithError(err).Warn("invalid log level, keeping info")
	}
	logger.SetLogFormat(cfg.LogFormat)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := newServer(ctx, cfg)
	if err != nil {
		logger.L.WithError(err).Error("failed to start")
		return err
	}
	defer srv.Close()

	return srv.ListenAndServe(ctx)
}
