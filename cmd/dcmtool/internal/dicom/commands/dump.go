// Package commands implements the dcmtool subcommands.
package commands

import (
	"fmt"
	"os"

	"github.com/alexeyco/simpletable"
	"github.com/charmbracelet/log"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/config"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/dicom/ui"
	"github.com/codeninja55/go-dcmx/dicom"
)

// DumpCmd prints the elements of one or more DICOM files.
type DumpCmd struct {
	Paths []string `arg:"" type:"existingfile" help:"DICOM files to dump"`
	Limit int      `name:"limit" default:"0" help:"Maximum elements to print per file (0 = all)"`
}

// Run executes the dump command.
func (c *DumpCmd) Run(cfg *config.GlobalConfig) error {
	if !cfg.NoBanner {
		ui.PrintBanner()
	}
	logger := log.Default()

	for _, path := range c.Paths {
		result, err := parseWithIssues(path)
		if err != nil {
			logger.Error("failed to parse", "file", path, "error", err)
			continue
		}

		logger.Info("parsed DICOM file",
			"file", path,
			"elements", result.DataSet.Len(),
			"transfer_syntax", result.TransferSyntax.UID,
		)

		table := simpletable.New()
		table.Header = &simpletable.Header{
			Cells: []*simpletable.Cell{
				{Align: simpletable.AlignLeft, Text: "Tag"},
				{Align: simpletable.AlignLeft, Text: "VR"},
				{Align: simpletable.AlignLeft, Text: "Name"},
				{Align: simpletable.AlignLeft, Text: "Value"},
			},
		}

		for i, elem := range result.DataSet.Elements() {
			if c.Limit > 0 && i >= c.Limit {
				break
			}
			value := elem.Value().String()
			if len(value) > 60 {
				value = value[:60] + "..."
			}
			table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
				{Text: elem.Tag().String()},
				{Text: elem.VR().String()},
				{Text: elem.Name()},
				{Text: value},
			})
		}

		table.SetStyle(simpletable.StyleCompactLite)
		fmt.Fprintln(os.Stdout, table.String())
	}
	return nil
}

// parseWithIssues parses one file with the default options, collecting (but
// not enforcing) the private-tag issues the decoder reports. No validation
// profile is run.
func parseWithIssues(path string) (*dicom.ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := dicom.DefaultReaderOptions()
	opts.CollectIssues = true
	return dicom.ParseReaderWithOptions(f, opts)
}
