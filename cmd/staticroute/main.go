package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/staticroute"
)

var rootCmd = cobra.Command{
	Use:   "staticroute",
	Short: "Mint and inspect signed query-parameter tokens",
	Long: "staticroute encodes URL query parameters into deterministic, tamper-evident\n" +
		"tokens and decodes them back, using the same codec the library exposes.\n" +
		"The signing secret comes from --secret or the STATIC_ROUTE_SECRET variable.",
	SilenceUsage: true,
}

var secretFlag string

func init() {
	rootCmd.PersistentFlags().StringVarP(&secretFlag, "secret", "s", "",
		"signing secret (default: STATIC_ROUTE_SECRET from the environment)")
}

// getCodec builds a codec from the --secret flag, falling back to the
// environment adapter.
func getCodec() (*staticroute.Codec, error) {
	if secretFlag != "" {
		return staticroute.New(secretFlag)
	}
	return staticroute.NewFromEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
