package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lilrsa/internal/store"
)

func fingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a stored key's fingerprint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The fingerprint lives in plaintext metadata, so no passphrase is needed.
			metas, err := appCtx.Keys.List()
			if err != nil {
				return err
			}
			for _, m := range metas {
				if string(m.ID) == keyID {
					fmt.Fprintln(cmd.OutOrStdout(), m.Fingerprint)
					return nil
				}
			}
			return store.ErrKeyNotFound
		},
	}
	addKeyFlag(cmd)
	return cmd
}
