package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lilrsa/internal/app"
	"lilrsa/internal/logging"
)

var (
	home       string
	cfgFile    string
	passphrase string
	logLevel   string
	appCtx     *app.Wire

	keyID string
)

// Execute runs the CLI against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with fresh flag state.
func NewRootCmd() *cobra.Command {
	v := viper.New()

	root := &cobra.Command{
		Use:           "lilrsa",
		Short:         "Textbook RSA key engine",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			appCtx, err = app.NewWire(cfg, log)
			return err
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&home, "home", "", "key store dir (default ~/.lilrsa)")
	flags.StringVar(&cfgFile, "config", "", "config file (default <home>/config.yaml)")
	flags.StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting stored keys")
	flags.StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	_ = v.BindPFlag("home", flags.Lookup("home"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		keygenCmd(),
		listCmd(),
		fingerprintCmd(),
		encryptCmd(),
		decryptCmd(),
		signCmd(),
		verifyCmd(),
		exportCmd(),
		demoCmd(),
	)
	return root
}
