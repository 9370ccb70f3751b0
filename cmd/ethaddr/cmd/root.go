package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version information
	Version   = "1.0.0"
	CommitSHA = "unknown"
	BuildTime = "unknown"

	// Global flags
	debugMode bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ethaddr",
	Short: "Ethereum address generator",
	Long: `ethaddr generates Ethereum keypairs and addresses.

A private key is the Keccak-256 hash of 32 bytes drawn from the system's
secure random source. The address is derived from the uncompressed
secp256k1 public key per the Ethereum yellow paper.

Keys are printed to stdout and never written anywhere else.`,
	Version:       fmt.Sprintf("%s (Build: %s, Commit: %s)", Version, BuildTime, CommitSHA),
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogger)

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false,
		"enable debug logging")

	rootCmd.SetVersionTemplate(`Version: {{.Version}}
`)
}

// initLogger configures the global zerolog logger. Human-readable console
// output when stderr is a terminal, JSON otherwise.
func initLogger() {
	if debugMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	if term.IsTerminal(int(os.Stderr.Fd())) {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
