package cmd

import (
	"os"

	configs "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/internal/env"
	customLogger "github.com/localscan/explorer/internal/log"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "explorer",
		Short: "Block explorer for a local development chain",
		Long:  "Scans the recent blocks of a local EVM node and serves them with decoded calls and events of locally verified contracts.",
		Run: func(cmd *cobra.Command, args []string) {
			RunApi(cmd, args)
		},
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yml)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC Url of the local node")
	rootCmd.PersistentFlags().Int("rpc-blocks-blocksPerRequest", 0, "How many blocks to fetch per batch request")
	rootCmd.PersistentFlags().String("log-level", "", "Log level to use for the application")
	rootCmd.PersistentFlags().Bool("log-prettify", false, "Whether to prettify the log output")
	rootCmd.PersistentFlags().Int("scanner-blocksToScan", 0, "How many recent blocks a window scan covers")
	rootCmd.PersistentFlags().Int("scanner-concurrency", 0, "How many blocks a window scan fetches in parallel")
	rootCmd.PersistentFlags().String("api-listen", "", "Address the API server listens on")
	rootCmd.PersistentFlags().String("api-host", "", "Host advertised in the swagger documentation")
	rootCmd.PersistentFlags().String("api-basicAuth-username", "", "Basic auth username for the explorer API")
	rootCmd.PersistentFlags().String("api-basicAuth-password", "", "Basic auth password for the explorer API")
	viper.BindPFlag("rpc.url", rootCmd.PersistentFlags().Lookup("rpc-url"))
	viper.BindPFlag("rpc.blocks.blocksPerRequest", rootCmd.PersistentFlags().Lookup("rpc-blocks-blocksPerRequest"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log.prettify", rootCmd.PersistentFlags().Lookup("log-prettify"))
	viper.BindPFlag("scanner.blocksToScan", rootCmd.PersistentFlags().Lookup("scanner-blocksToScan"))
	viper.BindPFlag("scanner.concurrency", rootCmd.PersistentFlags().Lookup("scanner-concurrency"))
	viper.BindPFlag("api.listen", rootCmd.PersistentFlags().Lookup("api-listen"))
	viper.BindPFlag("api.host", rootCmd.PersistentFlags().Lookup("api-host"))
	viper.BindPFlag("api.basicAuth.username", rootCmd.PersistentFlags().Lookup("api-basicAuth-username"))
	viper.BindPFlag("api.basicAuth.password", rootCmd.PersistentFlags().Lookup("api-basicAuth-password"))
	rootCmd.AddCommand(apiCmd)
	rootCmd.AddCommand(scanCmd)
}

func initConfig() {
	env.Load()
	if err := configs.LoadConfig(cfgFile); err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	customLogger.InitLogger()
}
