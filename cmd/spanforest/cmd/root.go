package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spanforest/cmd/spanforest/cmd/span"
	"github.com/katalvlaran/spanforest/internal/config"
	"github.com/katalvlaran/spanforest/internal/logger"
)

var (
	Version string
	Commit  string

	RootCmd = &cobra.Command{
		Use:   "spanforest",
		Short: "spanforest computes minimum spanning trees of weighted chain files",
		Long: "Reads an undirected weighted graph written as chains of vertex,weight pairs " +
			"and prints its minimum spanning tree, or a minimum spanning forest when the " +
			"graph is disconnected, using Kruskal's or Prim's algorithm.",
		SilenceUsage: true,
	}
	cfgFile string
	Config  = config.New()
)

func Execute() error {
	return RootCmd.Execute()
}

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				Commit = setting.Value
			}
		}
	}
	RootCmd.Version = strings.TrimSpace(fmt.Sprintf("%s %s", Version, Commit))

	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, json or toml)")
	RootCmd.PersistentFlags().StringP("log-format", "", Config.Log.Format, "logging format [text|json]")
	RootCmd.PersistentFlags().StringP("log-level", "", Config.Log.Level,
		fmt.Sprintf(
			"logging level %s|%s|%s|%s",
			zerolog.LevelTraceValue,
			zerolog.LevelDebugValue,
			zerolog.LevelInfoValue,
			zerolog.LevelWarnValue,
		),
	)

	if err := viper.BindPFlag("log.format", RootCmd.PersistentFlags().Lookup("log-format")); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := viper.BindPFlag("log.level", RootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		log.Fatal().Err(err).Msg("")
	}

	RootCmd.AddCommand(span.NewCmd(Config, viper.GetViper()))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			log.Fatal().Err(err).Msg("error reading from config file")
		}
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := config.Load(viper.GetViper(), Config); err != nil {
		log.Fatal().Err(err).Msg("")
	}
	if err := logger.SetLogLevel(Config.Log.Level, Config.Log.Format); err != nil {
		log.Fatal().Err(err).Msg("")
	}
}
