package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"fjacquet/weekledger/internal/common"
	"fjacquet/weekledger/internal/fileutils"
	"fjacquet/weekledger/internal/logging"
	"fjacquet/weekledger/internal/models"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Generator renders views in the supported output formats.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a new instance of Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger}
}

// Generate renders the view in the specified format (table, csv, json or
// yaml). It returns the rendered bytes and an error if the format is
// unsupported or rendering fails.
func (g *Generator) Generate(view View, format string) ([]byte, error) {
	switch format {
	case "table":
		var buf bytes.Buffer
		g.Render(&buf, view)
		return buf.Bytes(), nil
	case "csv":
		return common.MarshalCSVRows(view.Rows)
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal JSON view")
			return nil, fmt.Errorf("failed to marshal JSON view: %w", err)
		}
		return data, nil
	case "yaml":
		data, err := yaml.Marshal(view)
		if err != nil {
			g.logger.WithError(err).Error("Failed to marshal YAML view")
			return nil, fmt.Errorf("failed to marshal YAML view: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

// Render writes the view to w as human-readable tables: one for the
// expenses and one for the category totals.
func (g *Generator) Render(w io.Writer, view View) {
	if view.Title != "" {
		fmt.Fprintf(w, "%s\n\n", view.Title)
	}

	expenses := table.NewWriter()
	expenses.SetOutputMirror(w)
	expenses.AppendHeader(table.Row{"Date", "Description", "Category", "Amount"})
	for _, row := range view.Rows {
		expenses.AppendRow(table.Row{row.Date, row.Description, row.Category, view.Symbol + row.Amount})
	}
	expenses.SetStyle(table.StyleRounded)
	expenses.Style().Format.Header = text.FormatDefault
	expenses.SetColumnConfigs([]table.ColumnConfig{
		{Number: 4, Align: text.AlignRight},
	})
	expenses.Render()

	fmt.Fprintln(w)

	totals := table.NewWriter()
	totals.SetOutputMirror(w)
	totals.AppendHeader(table.Row{"Category", "Total"})
	for _, total := range view.Totals {
		amount := view.Symbol + total.Total
		if total.Total == "0.00" {
			amount = text.FgHiBlack.Sprint(amount)
		}
		totals.AppendRow(table.Row{total.Category, amount})
	}
	totals.AppendSeparator()
	totals.AppendFooter(table.Row{
		text.Bold.Sprint("Total"),
		text.Bold.Sprint(view.Symbol + view.GrandTotal),
	})
	totals.SetStyle(table.StyleRounded)
	totals.Style().Format.Header = text.FormatDefault
	totals.Style().Format.Footer = text.FormatDefault
	totals.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})
	totals.Render()
}

// WriteToFile renders the view and writes it to path. CSV exports go
// through the shared CSV writer so the column layout matches bulk imports.
func (g *Generator) WriteToFile(view View, format, path string) error {
	if format == "csv" {
		return common.WriteCSVFile(view.Rows, path, g.logger)
	}

	data, err := g.Generate(view, format)
	if err != nil {
		return err
	}

	if err := fileutils.WriteFile(path, data, models.PermissionExportFile); err != nil {
		g.logger.WithError(err).Error("Failed to write report file")
		return fmt.Errorf("error writing report file: %w", err)
	}

	g.logger.Info("Report written",
		logging.Field{Key: logging.FieldFile, Value: path},
		logging.Field{Key: logging.FieldFormat, Value: format})
	return nil
}
