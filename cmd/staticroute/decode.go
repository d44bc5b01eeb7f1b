package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
)

var decodeCmd = cobra.Command{
	Use:   "decode <token>",
	Short: "Verify a token and print its parameters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		codec, err := getCodec()
		if err != nil {
			return err
		}

		params, err := codec.Decode(args[0])
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(params))
		for key := range params {
			keys = append(keys, key)
		}
		slices.Sort(keys)

		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, params[key])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(&decodeCmd)
}
