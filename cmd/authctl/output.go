package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"authkit/internal/platform/config"
)

// okResult is printed by commands whose response carries no data.
type okResult struct {
	OK bool `json:"ok"`
}

// render writes v to stdout as indented JSON or as a key/value table.
func (a *app) render(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()
	if a.cfg.Output == config.OutputText {
		return printText(out, v)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("format output: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

// printText flattens v through its JSON form so embedded fields line up with
// the wire names.
func printText(out io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("format output: %w", err)
	}
	var fields map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("format output: %w", err)
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, k := range keys {
		value := fields[k]
		switch value.(type) {
		case map[string]any, []any:
			nested, _ := json.Marshal(value)
			value = string(nested)
		}
		_, _ = fmt.Fprintf(w, "%s\t%v\n", k, value)
	}
	return w.Flush()
}
