package cmd

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/localscan/explorer/internal/explorer"
	"github.com/localscan/explorer/internal/rpc"
	"github.com/localscan/explorer/internal/scanner"
)

var (
	scanPage  int
	scanLimit int

	scanCmd = &cobra.Command{
		Use:   "scan [address]",
		Short: "Scan the recent block window once and print the transactions as JSON",
		Long:  "Scans the recent block window for the transactions of an address, or every transaction when no address is given, and prints one page as JSON.",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			RunScan(cmd, args)
		},
	}
)

func init() {
	scanCmd.Flags().IntVar(&scanPage, "page", 1, "Page number")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 10, "Number of transactions per page")
	scanCmd.Flags().Int("blocks", 0, "Override the number of blocks to scan")
}

func RunScan(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()

	client, err := rpc.Initialize(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize RPC")
	}
	defer client.Close()

	store, err := openMetadataStorage()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open metadata storage")
	}
	defer store.Close()

	var opts []scanner.ScannerOption
	if blocks, _ := cmd.Flags().GetInt("blocks"); blocks > 0 {
		opts = append(opts, scanner.WithBlocksToScan(blocks))
	}
	service, err := explorer.NewService(client, store, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create explorer service")
	}

	var result interface{}
	if len(args) == 1 {
		result, err = service.AddressTransactions(ctx, args[0], scanPage, scanLimit)
	} else {
		result, err = service.AllTransactions(ctx, scanPage, scanLimit)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Scan failed")
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Fatal().Err(err).Msg("Failed to write scan result")
	}
}
