package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"lilrsa/internal/domain"
	"lilrsa/internal/util/memzero"
)

func exportCmd() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a stored key as an RSA PRIVATE KEY PEM block",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			pemBytes, err := appCtx.Keys.ExportPEM(passphrase, domain.KeyID(keyID))
			if err != nil {
				return err
			}
			defer memzero.Zero(pemBytes)
			if outFile == "" {
				_, err = cmd.OutOrStdout().Write(pemBytes)
				return err
			}
			if err := os.WriteFile(outFile, pemBytes, 0o600); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", good("Wrote"), outFile)
			return nil
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().StringVar(&outFile, "out", "", "write to file (mode 0600) instead of stdout")
	return cmd
}
