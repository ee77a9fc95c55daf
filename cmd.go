package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Global variables for configuration.
var (
	cfgFile    string
	debug      bool
	skipSplash bool
	splashMS   int
	assetsDir  string
	credsFile  string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "webabiq",
	Short: "A terminal account book",
	Long: `A small terminal account book: a splash screen, a login gate, and a
ledger of income and paid transactions with monthly aggregates.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		// Setup logging
		log.SetLevel(log.InfoLevel)
		if debug {
			log.SetLevel(log.DebugLevel)
			log.Debug("Debug logging enabled")
		}

		return nil
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return rootAction(currentConfig())
	},
}

// currentConfig assembles the effective configuration from flags, env and
// the config file.
func currentConfig() Config {
	return Config{
		Debug:            debug,
		SkipSplash:       skipSplash,
		SplashDurationMS: splashMS,
		AssetsDir:        assetsDir,
		CredentialsFile:  credsFile,
		Colors: Colors{
			Primary:       viper.GetString("colors.primary"),
			Error:         viper.GetString("colors.error"),
			Success:       viper.GetString("colors.success"),
			Muted:         viper.GetString("colors.muted"),
			Income:        viper.GetString("colors.income"),
			Expense:       viper.GetString("colors.expense"),
			Border:        viper.GetString("colors.border"),
			Text:          viper.GetString("colors.text"),
			SecondaryText: viper.GetString("colors.secondary_text"),
		},
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.webabiq.toml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&skipSplash, "skip-splash", false, "skip the splash screen")
	rootCmd.PersistentFlags().IntVar(&splashMS, "splash-duration", 0,
		"splash screen duration in milliseconds (default 3000)")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets", "",
		"directory holding the splash animation and logo")
	rootCmd.PersistentFlags().StringVar(&credsFile, "credentials", "",
		"TOML file with a username/password table")

	// Bind flags to viper
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("skip_splash", rootCmd.PersistentFlags().Lookup("skip-splash"))
	_ = viper.BindPFlag("splash_duration_ms", rootCmd.PersistentFlags().Lookup("splash-duration"))
	_ = viper.BindPFlag("assets_dir", rootCmd.PersistentFlags().Lookup("assets"))
	_ = viper.BindPFlag("credentials_file", rootCmd.PersistentFlags().Lookup("credentials"))

	// Bind environment variables
	_ = viper.BindEnv("credentials_file", "WEBABIQ_CREDENTIALS")
	_ = viper.BindEnv("assets_dir", "WEBABIQ_ASSETS")

	// Add subcommands
	rootCmd.AddCommand(demoCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else if found := findConfigFile(); found != "" {
		viper.SetConfigFile(found)
		viper.SetConfigType("toml")
	}

	viper.AutomaticEnv() // read in environment variables that match

	if viper.ConfigFileUsed() == "" {
		return
	}

	if err := viper.ReadInConfig(); err != nil {
		log.Debug("Error reading config file", "error", err)
		return
	}

	log.Debug("Using config file", "file", viper.ConfigFileUsed())

	// Update global variables from viper
	if !rootCmd.PersistentFlags().Changed("debug") {
		debug = viper.GetBool("debug")
	}
	if !rootCmd.PersistentFlags().Changed("skip-splash") {
		skipSplash = viper.GetBool("skip_splash")
	}
	if !rootCmd.PersistentFlags().Changed("splash-duration") {
		splashMS = viper.GetInt("splash_duration_ms")
	}
	if !rootCmd.PersistentFlags().Changed("assets") {
		assetsDir = viper.GetString("assets_dir")
	}
	if !rootCmd.PersistentFlags().Changed("credentials") {
		credsFile = viper.GetString("credentials_file")
	}
}
