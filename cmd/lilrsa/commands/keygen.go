package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lilrsa/internal/primes"
)

func keygenCmd() *cobra.Command {
	var tier int
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if !cmd.Flags().Changed("tier") {
				tier = appCtx.Config.DefaultTier
			}
			if !primes.Known(tier) {
				appCtx.Log.WithField("tier", tier).Warn("tier not in prime table, using fallback pair")
			}
			meta, _, err := appCtx.Keys.Generate(passphrase, tier)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, good("Key created."))
			fmt.Fprintf(out, "%s %s\n", label("ID:"), meta.ID)
			fmt.Fprintf(out, "%s %s\n", label("Fingerprint:"), meta.Fingerprint)
			fmt.Fprintf(out, "%s %d (%d-bit modulus)\n", label("Tier:"), meta.Tier, meta.Bits)
			return nil
		},
	}
	cmd.Flags().IntVar(&tier, "tier", primes.DefaultTier, "prime table tier (default from config)")
	return cmd
}
