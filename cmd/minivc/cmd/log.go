package cmd

import (
	"context"
	"log"
	"os"

	"github.com/spf13/cobra"
)

// logCmd represents the log command
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Get commit history",
	Long:  `Displays the list of commits with their messages and file contents`,
	Run: func(cmd *cobra.Command, args []string) {
		repo, _, err := initRepo()
		if err != nil {
			log.Fatalln(err)
		}
		if err := renderLog(context.Background(), os.Stdout, repo); err != nil {
			log.Fatalln(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
}
