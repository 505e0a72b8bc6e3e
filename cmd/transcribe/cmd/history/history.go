package history

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"audio-transcriber/internal/app/repository"
)

var limit int

func init() {
	Cmd.Flags().IntVarP(&limit, "limit", "l", 20, "maximum number of runs to list")
}

// Cmd represents the history command
var Cmd = &cobra.Command{
	Use:   "history",
	Short: "List recent transcription runs",
	Long: `List recent transcription runs

- Every invocation of transcribe is recorded to the local database
- Failed runs are listed with their error message`,
	Run: func(cmd *cobra.Command, args []string) {
		dao, err := repository.OpenFromEnv()
		if err != nil {
			log.Fatalf("Failed to open transcription database: %v\n", err)
		}
		defer dao.Close()

		runs, err := dao.ListRecent(limit)
		if err != nil {
			log.Fatal(err)
		}

		for _, r := range runs {
			if r.HasError {
				fmt.Printf("%s  %s  [%s/%s]  ERROR: %s\n",
					r.CreatedAt.Format("2006-01-02 15:04:05"), r.FileName, r.Provider, r.ModelTier, r.ErrorMessage)
				continue
			}
			fmt.Printf("%s  %s  [%s/%s]  %ds  %s\n",
				r.CreatedAt.Format("2006-01-02 15:04:05"), r.FileName, r.Provider, r.ModelTier, r.DurationSec, r.Transcript)
		}
	},
}
