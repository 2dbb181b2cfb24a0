package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
)

// checkoutCmd represents the checkout command
var checkoutCmd = &cobra.Command{
	Use:   "checkout <id>",
	Short: "Restore the files recorded under a commit ID",
	Long: `Updates files in the working directory to match the snapshot
stored under the given commit ID.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			log.Fatalf("invalid commit ID %q", args[0])
		}
		repo, ws, err := initRepo()
		if err != nil {
			log.Fatalln(err)
		}
		if err := repo.Checkout(context.Background(), id, ws); err != nil {
			log.Fatalln(err)
		}
		fmt.Printf("Checked out commit %d, files restored on disk.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}
