package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/envconf-go/internal/cli/output"
	"github.com/yndnr/envconf-go/internal/core/domain"
)

// ShowCommand prints the merged configuration.
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:   "show",
		Usage:  "Load the directory and print the merged configuration",
		Action: configShow,
	}
}

// GetCommand prints a single top-level key.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "Load the directory and print one key",
		ArgsUsage: "KEY",
		Action:    configGet,
	}
}

// CheckCommand validates the directory and reports what was merged.
func CheckCommand() *cli.Command {
	return &cli.Command{
		Name:   "check",
		Usage:  "Load the directory, validate required keys and summarise the result",
		Action: configCheck,
	}
}

func formatter(c *cli.Context) (output.Formatter, error) {
	return output.NewFormatter(output.Format(c.String("output")))
}

func configShow(c *cli.Context) error {
	f, err := formatter(c)
	if err != nil {
		return err
	}

	l, err := loadConfig(c)
	if err != nil {
		return err
	}

	return f.Format(c.App.Writer, l.Configuration())
}

func configGet(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("get requires exactly one KEY argument")
	}
	key := c.Args().First()

	f, err := formatter(c)
	if err != nil {
		return err
	}

	l, err := loadConfig(c)
	if err != nil {
		return err
	}

	v, ok := l.Get(key)
	if !ok {
		return fmt.Errorf("key %q not found", key)
	}
	return f.Format(c.App.Writer, v)
}

type checkResult struct {
	Valid                bool     `json:"valid" yaml:"valid"`
	Directory            string   `json:"directory" yaml:"directory"`
	Environment          string   `json:"environment" yaml:"environment"`
	PossibleEnvironments []string `json:"possible_environments" yaml:"possible_environments"`
	MergedFiles          []string `json:"merged_files" yaml:"merged_files"`
	Keys                 int      `json:"keys" yaml:"keys"`
	RequiredKeys         []string `json:"required_keys" yaml:"required_keys"`
}

func configCheck(c *cli.Context) error {
	f, err := formatter(c)
	if err != nil {
		return err
	}

	l, err := loadConfig(c)
	if err != nil {
		return reportFailure(c, f, err)
	}

	dir, err := l.Directory()
	if err != nil {
		return err
	}

	res := checkResult{
		Valid:                true,
		Directory:            dir,
		Environment:          l.Environment(),
		PossibleEnvironments: l.PossibleEnvironments(),
		MergedFiles:          l.MergedFiles(),
		Keys:                 len(l.Keys()),
		RequiredKeys:         l.RequiredKeys(),
	}

	if _, ok := f.(*output.TableFormatter); ok {
		return f.Format(c.App.Writer, res.table())
	}
	return f.Format(c.App.Writer, res)
}

type checkFailure struct {
	Valid bool   `json:"valid" yaml:"valid"`
	Code  string `json:"code" yaml:"code"`
	Error string `json:"error" yaml:"error"`
}

// reportFailure prints the code of a failed load in json and yaml modes
// and returns err unchanged.
func reportFailure(c *cli.Context, f output.Formatter, err error) error {
	if _, ok := f.(*output.TableFormatter); ok || !domain.IsDomainError(err, "") {
		return err
	}

	res := checkFailure{Code: domain.GetErrorCode(err), Error: err.Error()}
	if ferr := f.Format(c.App.Writer, res); ferr != nil {
		return ferr
	}
	return err
}

func (r checkResult) table() *output.Table {
	t := &output.Table{Headers: []string{"FIELD", "VALUE"}}
	t.AddRow("directory", r.Directory)
	t.AddRow("environment", r.Environment)
	t.AddRow("possible_environments", strings.Join(r.PossibleEnvironments, ","))
	t.AddRow("merged_files", strings.Join(r.MergedFiles, ","))
	t.AddRow("keys", strconv.Itoa(r.Keys))
	t.AddRow("required_keys", strings.Join(r.RequiredKeys, ","))
	return t
}
