package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

// scrubCmd represents the scrub command
var scrubCmd = &cobra.Command{
	Use:   "scrub",
	Short: "Discard all commit history",
	Long: `Deletes every stored snapshot and resets the commit ID sequence.

History is durable across runs; scrubbing is the only operation that
removes it.`,
	Run: func(cmd *cobra.Command, args []string) {
		repo, _, err := initRepo()
		if err != nil {
			log.Fatalln(err)
		}
		if err := repo.Scrub(context.Background()); err != nil {
			log.Fatalln(err)
		}
		fmt.Println("Commit history scrubbed.")
	},
}

func init() {
	rootCmd.AddCommand(scrubCmd)
}
