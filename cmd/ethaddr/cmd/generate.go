package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	ethaddr "github.com/dwdwow/ethaddr-go"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one keypair and print it",
	Long: `Generate a single Ethereum keypair and print the private key and
address to stdout. Nothing is printed on failure.`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	keypair, err := ethaddr.Generate()
	if err != nil {
		return err
	}
	fmt.Printf("private_key: %s\n", keypair.PrivateKey.Hex())
	fmt.Printf("eth addr: %s\n", keypair.Address.Hex())
	return nil
}
