package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"lilrsa/internal/crypto"
	"lilrsa/internal/primes"
	"lilrsa/internal/protocol/textbook"
)

const (
	demoMessage = "Hello World!"
	undecodable = "(not valid text)"
)

func demoCmd() *cobra.Command {
	var tier int
	cmd := &cobra.Command{
		Use:   "demo [message]",
		Short: "Run every operation on a throwaway key pair",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg := demoMessage
			if len(args) == 1 {
				msg = args[0]
			}
			if !cmd.Flags().Changed("tier") {
				tier = appCtx.Config.DefaultTier
			}

			engine := textbook.NewEngine(primes.New())
			kp, err := engine.GenPair(tier)
			if err != nil {
				return err
			}
			fits := crypto.EncodeText(msg).Cmp(kp.N()) < 0
			c, err := engine.Encrypt(msg)
			if err != nil {
				return err
			}
			plain, err := renderable(engine.Decrypt(c))
			if err != nil {
				return err
			}
			s, err := engine.Sign(msg)
			if err != nil {
				return err
			}
			recovered, err := renderable(engine.Verify(s))
			if err != nil {
				return err
			}
			pemBytes, err := engine.EncodePrivateKeyPEM()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s, %s)\n", label("Public key:"), kp.N(), kp.E())
			fmt.Fprintf(out, "%s (%s, %s)\n", label("Private key:"), kp.N(), kp.D())
			fmt.Fprintf(out, "%s %s\n", label("Message:"), msg)
			fmt.Fprintf(out, "%s %s\n", label("Encrypted:"), c)
			fmt.Fprintf(out, "%s %s\n", label("Decrypted:"), plain)
			fmt.Fprintf(out, "%s %s\n", label("Signature:"), s)
			fmt.Fprintf(out, "%s %s\n", label("Verified:"), recovered)
			if !fits {
				fmt.Fprintln(out, warn("Message does not fit the modulus; pick a higher tier."))
			}
			fmt.Fprint(out, string(pemBytes))
			return nil
		},
	}
	cmd.Flags().IntVar(&tier, "tier", primes.DefaultTier, "prime table tier (default from config)")
	return cmd
}

// renderable turns a wrapped value that no longer decodes to text into a
// placeholder so the walkthrough still prints.
func renderable(text string, err error) (string, error) {
	if errors.Is(err, crypto.ErrDecode) {
		return undecodable, nil
	}
	return text, err
}
