package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message, printing a decimal signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, _, err := loadKey()
			if err != nil {
				return err
			}
			s, err := kp.Sign(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s.String())
			return nil
		},
	}
	addKeyFlag(cmd)
	return cmd
}

func verifyCmd() *cobra.Command {
	var expect string
	cmd := &cobra.Command{
		Use:   "verify <signature>",
		Short: "Recover the text carried by a signature",
		Long: "Recover the text carried by a signature. With --expect, check the\n" +
			"signature against that message instead and report the result.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := parseInteger(args[0])
			if err != nil {
				return err
			}
			kp, _, err := loadKey()
			if err != nil {
				return err
			}
			pub := kp.PublicKey()
			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("expect") {
				if err := pub.VerifyMessage(s, expect); err != nil {
					return err
				}
				fmt.Fprintln(out, good("Signature OK."))
				return nil
			}
			m, err := pub.Verify(s)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, m)
			return nil
		},
	}
	addKeyFlag(cmd)
	cmd.Flags().StringVar(&expect, "expect", "", "message the signature must match")
	return cmd
}
