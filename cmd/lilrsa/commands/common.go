package commands

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lilrsa/internal/domain"
	"lilrsa/internal/protocol/textbook"
)

var (
	label = color.New(color.FgCyan, color.Bold).SprintFunc()
	good  = color.New(color.FgGreen).SprintFunc()
	warn  = color.New(color.FgYellow).SprintFunc()
)

// addKeyFlag registers the required --key flag on cmd.
func addKeyFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&keyID, "key", "", "id of a stored key (see `lilrsa list`)")
	_ = cmd.MarkFlagRequired("key")
}

// loadKey unseals and rebuilds the key selected with --key.
func loadKey() (*textbook.KeyPair, domain.KeyMeta, error) {
	if passphrase == "" {
		return nil, domain.KeyMeta{}, fmt.Errorf("passphrase required (-p)")
	}
	return appCtx.Keys.Load(passphrase, domain.KeyID(keyID))
}

// parseInteger reads a base-10 ciphertext or signature.
func parseInteger(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%q is not a decimal integer", s)
	}
	return n, nil
}
