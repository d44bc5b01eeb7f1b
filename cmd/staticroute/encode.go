package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/staticroute/core/queryparams"
)

var encodeCmd = cobra.Command{
	Use:   "encode [key=value ...]",
	Short: "Encode key=value pairs into a signed token",
	Example: `  staticroute encode q=hello page=2 --secret s3cret
  STATIC_ROUTE_SECRET=s3cret staticroute encode q=hello`,
	RunE: func(cmd *cobra.Command, args []string) error {
		params := make(queryparams.Params, len(args))
		for _, arg := range args {
			key, value, found := strings.Cut(arg, "=")
			if !found || key == "" {
				return fmt.Errorf("invalid argument %q: expected key=value", arg)
			}
			if _, dup := params[key]; dup {
				return fmt.Errorf("duplicate key %q", key)
			}
			params[key] = value
		}

		codec, err := getCodec()
		if err != nil {
			return err
		}

		token, err := codec.Encode(params, nil)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(&encodeCmd)
}
