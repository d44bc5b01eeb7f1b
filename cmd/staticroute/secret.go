package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/spf13/cobra"
)

// secretBytes is 256 bits, the recommended effective entropy for the
// HMAC-SHA256 key.
const secretBytes = 32

var secretCmd = cobra.Command{
	Use:   "secret",
	Short: "Generate a random signing secret",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		buf := make([]byte, secretBytes)
		if _, err := rand.Read(buf); err != nil {
			return fmt.Errorf("generate secret: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), base64.RawURLEncoding.EncodeToString(buf))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(&secretCmd)
}
