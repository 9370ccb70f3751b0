package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	ethaddr "github.com/dwdwow/ethaddr-go"
)

var (
	batchCount   int
	batchWorkers int
	batchJSON    bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Generate many keypairs",
	Long: `Generate many independent Ethereum keypairs on a worker pool and
print them to stdout, one per line.

The batch size ceiling and worker count default from the ETHADDR_MAX_BATCH
and ETHADDR_WORKERS environment variables; --workers overrides the latter.`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchCount, "count", 1,
		"number of keypairs to generate")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0,
		"number of concurrent workers (default: one per CPU)")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false,
		"emit one JSON record per line")
}

// keyRecord is the JSON shape of one generated keypair.
type keyRecord struct {
	PrivateKeyHex string `json:"private_key"`
	AddressHex    string `json:"address"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := ethaddr.FromEnv("ETHADDR")
	if err != nil {
		return err
	}
	if batchWorkers > 0 {
		cfg.Workers = batchWorkers
	}

	start := time.Now()
	keypairs, err := ethaddr.GenerateMany(cmd.Context(), batchCount, cfg)
	if err != nil {
		return err
	}
	log.Info().
		Int("count", len(keypairs)).
		Dur("elapsed", time.Since(start)).
		Msg("batch generation done")

	if batchJSON {
		enc := json.NewEncoder(os.Stdout)
		for _, keypair := range keypairs {
			record := keyRecord{
				PrivateKeyHex: keypair.PrivateKey.Hex(),
				AddressHex:    keypair.Address.Hex(),
			}
			if err := enc.Encode(record); err != nil {
				return err
			}
		}
		return nil
	}
	for _, keypair := range keypairs {
		fmt.Printf("%s %s\n", keypair.PrivateKey.Hex(), keypair.Address.Hex())
	}
	return nil
}
