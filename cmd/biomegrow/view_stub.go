//go:build !ebiten

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newViewCmd(*rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Play the sequence in a window (requires the ebiten build tag)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.ErrOrStderr(), "The viewer requires the ebiten build tag.")
			fmt.Fprintln(cmd.ErrOrStderr(), "Re-run with `go run -tags ebiten ./cmd/biomegrow view` or build with `-tags ebiten`.")
			return errors.New("built without ebiten")
		},
	}
}
