package cmd

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/tracelab/go-raytrace/pkg/scene"
	"github.com/urfave/cli"
)

// ListScenes prints the built-in scene catalog.
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Name", "Description", "Instances", "Environments"})
	for _, info := range scene.Builtin() {
		s := info.Build()
		table.Append([]string{
			info.Name,
			info.Description,
			fmt.Sprintf("%d", len(s.Instances)),
			fmt.Sprintf("%d", len(s.Environments)),
		})
	}
	table.Render()
	logger.Noticef("available scenes\n%s", buf.String())
	return nil
}
