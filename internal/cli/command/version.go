package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/envconf-go/internal/cli/output"
	"github.com/yndnr/envconf-go/internal/infra/buildinfo"
)

// VersionCommand prints build information.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show build information",
		Action: func(c *cli.Context) error {
			f, err := output.NewFormatter(output.Format(c.String("output")))
			if err != nil {
				return err
			}
			if _, ok := f.(*output.TableFormatter); ok {
				_, err := fmt.Fprintf(c.App.Writer, "envconf %s\n", buildinfo.String())
				return err
			}
			return f.Format(c.App.Writer, buildinfo.Get())
		},
	}
}
