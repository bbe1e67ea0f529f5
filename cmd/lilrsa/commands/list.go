package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			metas, err := appCtx.Keys.List()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(metas) == 0 {
				fmt.Fprintln(out, warn("No keys stored. Run `lilrsa keygen` to create one."))
				return nil
			}
			for _, m := range metas {
				created := time.Unix(m.CreatedUTC, 0).UTC().Format(time.RFC3339)
				fmt.Fprintf(out, "%s  tier=%-4d bits=%-5d %s  %s\n", label(m.ID), m.Tier, m.Bits, m.Fingerprint, created)
			}
			return nil
		},
	}
}
