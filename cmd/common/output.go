// Package common contains shared functionality for command handlers
package common

import (
	"bytes"
	"fmt"
	"os"

	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/report"
	"fjacquet/weekledger/internal/validation"
)

// Emit renders a view in the requested format, to stdout or to the
// output file when one is given.
func Emit(gen *report.Generator, view report.View, format, outputFile string, log logging.Logger) {
	if err := validation.IsValidExportFormat(format); err != nil {
		log.Fatalf("Error rendering report: %v", err)
	}

	if outputFile != "" {
		if err := gen.WriteToFile(view, format, outputFile); err != nil {
			log.Fatalf("Error writing report: %v", err)
		}
		log.Info("Report written successfully!")
		return
	}

	if format == "table" {
		gen.Render(os.Stdout, view)
		return
	}

	data, err := gen.Generate(view, format)
	if err != nil {
		log.Fatalf("Error rendering report: %v", err)
	}
	fmt.Print(string(data))
	if !bytes.HasSuffix(data, []byte("\n")) {
		fmt.Println()
	}
}
