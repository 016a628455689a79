package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cssx-dev/cssx/extractor"
	"github.com/cssx-dev/cssx/internal"
	"github.com/cssx-dev/cssx/internal/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Watch a project tree and re-extract a file whenever it's saved",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		root := "."
		if len(args) == 1 {
			root = args[0]
		}
		runWatch(logger, root)
	},
}

func runWatch(logger *zap.Logger, root string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	engine, err := internal.NewEngine(root, cfg, true, cfgFile, logger)
	if err != nil {
		logger.Fatal("failed to initialize engine", zap.Error(err))
	}

	err = engine.StartWatching(root, func(path string, extracted []extractor.Extracted) {
		fmt.Printf("%s: %d result(s)\n", path, len(extracted))
		for _, e := range extracted {
			fmt.Printf("  %s\n", e.String())
		}
	})
	if err != nil {
		logger.Fatal("failed to start watching", zap.Error(err))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	if err := engine.StopWatching(); err != nil {
		logger.Error("error stopping watcher", zap.Error(err))
	}
}
