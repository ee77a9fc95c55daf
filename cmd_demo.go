package main

import (
	"github.com/spf13/cobra"
)

// demoCmd runs the account book with a seeded ledger so the screens can be
// explored without typing transactions in first.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the account book with sample data",
	Long: `Run the account book pre-filled with a handful of sample transactions.
The splash screen is skipped; log in with user/1.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		config := currentConfig()
		config.Demo = true
		config.SkipSplash = true

		return rootAction(config)
	},
}
