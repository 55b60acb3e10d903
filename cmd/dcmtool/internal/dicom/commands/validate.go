package commands

import (
	"fmt"
	"os"

	"github.com/alexeyco/simpletable"
	"github.com/charmbracelet/log"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/config"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/dicom/ui"
	"github.com/codeninja55/go-dcmx/dicom"
	"github.com/codeninja55/go-dcmx/dicom/validate"
)

// ValidateCmd checks DICOM files against a validation profile and reports
// every issue found.
type ValidateCmd struct {
	Paths   []string `arg:"" type:"existingfile" help:"DICOM files to validate"`
	Profile string   `name:"profile" default:"lenient" enum:"strict,lenient,permissive" help:"Validation profile (strict, lenient, permissive)"`
}

// Run executes the validate command.
func (c *ValidateCmd) Run(cfg *config.GlobalConfig) error {
	if !cfg.NoBanner {
		ui.PrintBanner()
	}
	logger := log.Default()

	var profile *validate.Profile
	switch c.Profile {
	case "strict":
		profile = validate.StrictProfile()
	case "permissive":
		profile = validate.PermissiveProfile()
	default:
		profile = validate.LenientProfile()
	}

	failed := 0
	for _, path := range c.Paths {
		issues, err := validateFile(path, profile)
		if err != nil {
			logger.Error("validation failed", "file", path, "error", err)
			failed++
			continue
		}

		if len(issues) == 0 {
			logger.Info("no issues", "file", path)
			continue
		}

		logger.Warn("issues found", "file", path, "count", len(issues))
		table := simpletable.New()
		table.Header = &simpletable.Header{
			Cells: []*simpletable.Cell{
				{Align: simpletable.AlignLeft, Text: "Severity"},
				{Align: simpletable.AlignLeft, Text: "Rule"},
				{Align: simpletable.AlignLeft, Text: "Tag"},
				{Align: simpletable.AlignRight, Text: "Offset"},
				{Align: simpletable.AlignLeft, Text: "Message"},
			},
		}
		for _, issue := range issues {
			table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
				{Text: issue.Severity.String()},
				{Text: issue.RuleID},
				{Text: issue.Tag.String()},
				{Align: simpletable.AlignRight, Text: fmt.Sprintf("%d", issue.StreamPosition)},
				{Text: issue.Message},
			})
		}
		table.SetStyle(simpletable.StyleCompactLite)
		fmt.Fprintln(os.Stdout, table.String())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed validation", failed, len(c.Paths))
	}
	return nil
}

func validateFile(path string, profile *validate.Profile) ([]validate.Issue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := dicom.DefaultReaderOptions()
	opts.ValidationProfile = profile
	opts.CollectIssues = true

	result, err := dicom.ParseReaderWithOptions(f, opts)
	if err != nil {
		return nil, err
	}
	return result.Issues, nil
}
