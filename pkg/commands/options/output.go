// Package options holds the flag sets shared by the glossary commands.
package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/glossary/pkg/api"
)

// OutputOptions selects JSON output for a one-shot command.
type OutputOptions struct {
	JSON bool
	// Out receives JSON errors; defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, oo *OutputOptions) {
	cmd.Flags().BoolVar(&oo.JSON, "json", false,
		"Output as JSON.")
}

// HandleError passes err through for human output. With --json it prints
// {"error": ..., "notFound": bool} and reports success so scripts can parse
// the result.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	b, mErr := json.Marshal(struct {
		Error    string `json:"error"`
		NotFound bool   `json:"notFound,omitempty"`
	}{Error: err.Error(), NotFound: api.IsNotFound(err)})
	if mErr != nil {
		return mErr
	}
	out := o.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintln(out, string(b))
	return nil
}
