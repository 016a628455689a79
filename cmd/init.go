package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/cssx-dev/cssx/internal/config"
)

// initCmd: cssx init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .cssx.yaml configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("error initializing config file", zap.Error(err))
			return
		}
		fmt.Printf("configuration file created/updated: %s\n", resolveConfigPath(cfgFile))
	},
}

func resolveConfigPath(configurationPath string) string {
	if configurationPath == "" {
		return ".cssx.yaml"
	}
	return configurationPath
}

func initConfigurationFile(configurationPath string) error {
	configurationPath = resolveConfigPath(configurationPath)

	cfg := config.Default()
	d, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
