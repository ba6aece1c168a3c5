package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/sghaida/creational/config"
)

// app carries what every subcommand needs once the root has resolved config.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer

	restoreGlobals func()
}

// newRootCmd wires the command tree. The caller must call app.close once the
// command has finished, whether or not it failed.
func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{
		v:      config.New(),
		logger: zap.NewNop(),
		stdout: stdout,
		stderr: stderr,
	}

	root := &cobra.Command{
		Use:           "creational",
		Short:         "Demonstrates builder, prototype and singleton construction patterns",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return a.init()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	root.PersistentFlags().String("log-level", "info", "minimum log level (debug, info, warn, error)")
	a.bind(config.KeyLogLevel, root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newBuilderCmd(a),
		newPrototypeCmd(a),
		newSingletonCmd(a),
	)
	return root, a
}

// bind ties a flag to a config key so an explicitly set flag overrides env.
func (a *app) bind(key string, f *pflag.Flag) {
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func (a *app) init() error {
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = newLogger(a.stderr, cfg.LogLevel)

	// prototype.NewLibrary logs through zap.L() unless told otherwise.
	a.restoreGlobals = zap.ReplaceGlobals(a.logger)
	return nil
}

func (a *app) close() {
	_ = a.logger.Sync()
	if a.restoreGlobals != nil {
		a.restoreGlobals()
		a.restoreGlobals = nil
	}
}

// newLogger returns a human-readable console logger writing to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}
