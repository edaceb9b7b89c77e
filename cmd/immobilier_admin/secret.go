package main

import (
	"fmt"

	"github.com/SscSPs/immobilier_backend/internal/utils"
	"github.com/spf13/cobra"
)

func newGenSecretCmd() *cobra.Command {
	var (
		size     int
		encoding string
	)
	cmd := &cobra.Command{
		Use:   "gen-secret",
		Short: "Print a random value suitable for JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			secret, err := utils.GenerateSecret(size, encoding)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), secret)
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "bytes", 32, "number of random bytes, at least 16")
	cmd.Flags().StringVar(&encoding, "encoding", utils.SecretEncodingHex, "output encoding: hex or base64url")
	return cmd
}
