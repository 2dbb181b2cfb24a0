package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "minivc",
	Short: "minivc is a minimal single-branch version control tool",
	Long: `minivc tracks named files through a stage, commit, checkout lifecycle,
storing immutable snapshots keyed by sequential commit IDs.

Run without a subcommand to start an interactive session with the
add/edit/commit/log/checkout commands. History is durable across runs;
use "minivc scrub" to discard it.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, ws, err := initRepo()
		if err != nil {
			return err
		}
		s := newSession(repo, ws, os.Stdin, os.Stdout)
		return s.run()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	log.SetFlags(0)
	cobra.OnInitialize(initConfig)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetDefault("repodir", ".minivc")
	viper.SetDefault("workdir", ".")
	viper.SetDefault("loglevel", "none")

	if os.Getenv("MINIVC_CONFIG") != "" {
		// Use config file from the flag.
		viper.SetConfigFile(os.Getenv("MINIVC_CONFIG"))
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(".minivc")
	}

	viper.AutomaticEnv() // read in environment variables that match
	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	}
}
