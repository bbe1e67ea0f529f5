// Package app loads configuration and wires application dependencies for
// the CLI.
//
// It reads Config through viper (defaults, optional config.yaml in the home
// directory, LILRSA_* environment variables, bound CLI flags), validates it,
// and builds the key store and key service exposed via the Wire struct.
package app
