package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lilrsa/internal/crypto"
)

func encryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt <message>",
		Short: "Encrypt a message to a decimal ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, _, err := loadKey()
			if err != nil {
				return err
			}
			if crypto.EncodeText(args[0]).Cmp(kp.N()) >= 0 {
				appCtx.Log.WithField("bits", kp.Bits()).Warn("message does not fit the modulus and will not decrypt intact")
			}
			c, err := kp.PublicKey().Encrypt(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), c.String())
			return nil
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt <ciphertext>",
		Short: "Decrypt a decimal ciphertext",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseInteger(args[0])
			if err != nil {
				return err
			}
			kp, _, err := loadKey()
			if err != nil {
				return err
			}
			m, err := kp.Decrypt(c)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), m)
			return nil
		},
	}
	addKeyFlag(cmd)
	return cmd
}
