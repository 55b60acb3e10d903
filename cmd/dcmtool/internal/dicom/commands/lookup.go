package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexeyco/simpletable"
	"github.com/codeninja55/go-dcmx/cmd/dcmtool/internal/config"
	"github.com/codeninja55/go-dcmx/dicom/tag"
)

// LookupCmd resolves tags or keywords against the DICOM data dictionary.
type LookupCmd struct {
	Queries []string `arg:"" help:"Tags like (0010,0010) or keywords like PatientName"`
}

// Run executes the lookup command.
func (c *LookupCmd) Run(_ *config.GlobalConfig) error {
	table := simpletable.New()
	table.Header = &simpletable.Header{
		Cells: []*simpletable.Cell{
			{Align: simpletable.AlignLeft, Text: "Tag"},
			{Align: simpletable.AlignLeft, Text: "VR"},
			{Align: simpletable.AlignLeft, Text: "VM"},
			{Align: simpletable.AlignLeft, Text: "Keyword"},
			{Align: simpletable.AlignLeft, Text: "Name"},
		},
	}

	for _, query := range c.Queries {
		info, err := resolve(query)
		if err != nil {
			return err
		}
		vrs := make([]string, len(info.VRs))
		for i, v := range info.VRs {
			vrs[i] = v.String()
		}
		name := info.Name
		if info.Retired {
			name += " (retired)"
		}
		table.Body.Cells = append(table.Body.Cells, []*simpletable.Cell{
			{Text: info.Tag.String()},
			{Text: strings.Join(vrs, " or ")},
			{Text: info.VM},
			{Text: info.Keyword},
			{Text: name},
		})
	}

	table.SetStyle(simpletable.StyleCompactLite)
	fmt.Fprintln(os.Stdout, table.String())
	return nil
}

func resolve(query string) (tag.Info, error) {
	if t, err := tag.Parse(query); err == nil {
		return tag.Find(t)
	}
	return tag.FindByKeyword(query)
}
