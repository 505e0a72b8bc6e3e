package export

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"audio-transcriber/internal/app/export"
	"audio-transcriber/internal/app/repository"
)

var outputFilePath string
var limit int

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().IntVarP(&limit, "limit", "l", 0, "maximum number of runs to export, 0 exports everything")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export transcription run history to excel",
	Long: `Export transcription run history to excel

- Exports the recorded runs, newest first, including failed ones`,
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

		if err := export.ToExcel(runs, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
