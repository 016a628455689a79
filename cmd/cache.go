package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cssx-dev/cssx/internal"
	"github.com/cssx-dev/cssx/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk extraction cache",
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every cached extraction result",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Fatal("failed to load config", zap.Error(err))
		}

		cache, err := internal.NewCache(cfg.CacheDir)
		if err != nil {
			logger.Fatal("failed to open cache", zap.Error(err))
		}

		cache.InvalidateAll()
		fmt.Printf("cache cleared: %s\n", cfg.CacheDir)
	},
}

func init() {
	cacheCmd.AddCommand(cacheClearCmd)
}
