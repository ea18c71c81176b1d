package main

import (
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/daimatz/objhook/pkg/config"
	"github.com/daimatz/objhook/pkg/native"
	"github.com/daimatz/objhook/pkg/objrt"
)

type rootOptions struct {
	configPath  string
	targetClass string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "objhook",
		Short:         "Hide the recording indicator by intercepting its controller's methods",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.targetClass, "target", "", "class to hook (overrides target_class)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error (overrides log_level)")

	cmd.AddCommand(newAttachCmd(opts), newClassesCmd(opts))
	return cmd
}

// load reads the config file and applies flag overrides.
func (o *rootOptions) load() (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	if o.targetClass != "" {
		cfg.TargetClass = o.targetClass
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, cfg config.Config) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// bootHost starts the host runtime described by cfg.
func bootHost(cfg config.Config) (*objrt.Runtime, error) {
	var classPath fs.FS
	if cfg.ClassPath != "" {
		classPath = os.DirFS(cfg.ClassPath)
	}
	return native.Boot(native.BootOptions{ClassPath: classPath, Classes: cfg.BootClasses})
}
