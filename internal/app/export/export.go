package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"audio-transcriber/internal/app/model"
)

var headers = []string{
	"ID", "Run ID", "Created At", "File Name", "Provider", "Model Tier",
	"Duration (s)", "Transcript", "Error Message",
}

// ToExcel writes the run history to an xlsx workbook.
func ToExcel(runs []model.Run, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, h := range headers {
		headerRow.AddCell().Value = h
	}

	for _, r := range runs {
		row := sheet.AddRow()
		for _, v := range rowValues(r) {
			row.AddCell().Value = v
		}
	}

	return file.Save(outputFilePath)
}

func rowValues(r model.Run) []string {
	return []string{
		fmt.Sprint(r.ID),
		r.RunID,
		r.CreatedAt.Format(time.RFC3339),
		r.FileName,
		r.Provider,
		r.ModelTier,
		fmt.Sprint(r.DurationSec),
		r.Transcript,
		r.ErrorMessage,
	}
}
