package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zooyer/dxftag/core"
)

const version = "0.1.0"

// globalFlags 所有子命令共享的参数
type globalFlags struct {
	config   string
	encoding string
	logLevel string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var flags globalFlags

	root := &cobra.Command{
		Use:           "dxftags",
		Short:         "Inspect the tag stream of DXF files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.config, "config", configPath(), "config file")
	root.PersistentFlags().StringVar(&flags.encoding, "encoding", "", "input encoding, e.g. cp1252 or ANSI_936")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newDumpCmd(&flags))
	root.AddCommand(newStatsCmd(&flags))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "dxftags", version)
		},
	}
}

// loaderOptions 合并配置文件和命令行参数，生成加载器配置
func loaderOptions(cmd *cobra.Command, flags *globalFlags) ([]core.Option, Config, error) {
	cfg := LoadConfig(flags.config)
	applyGlobalConfig(cmd, cfg, flags)

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: parseLevel(flags.logLevel),
	}))

	enc, err := core.LookupEncoding(flags.encoding)
	if err != nil {
		return nil, cfg, err
	}

	return []core.Option{core.WithLogger(logger), core.WithEncoding(enc)}, cfg, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
