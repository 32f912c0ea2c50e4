package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// printer handles table or JSON output.
type printer struct {
	format string
	w      io.Writer
}

func printerFromCmd(cmd *cobra.Command) (*printer, error) {
	format, _ := cmd.Flags().GetString("output")
	switch format {
	case "table", "json":
	default:
		return nil, fmt.Errorf("unknown output format %q, want table or json", format)
	}
	return &printer{format: format, w: cmd.OutOrStdout()}, nil
}

// json marshals v as indented JSON.
func (p *printer) json(v any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// table writes rows using tabwriter. header is the first row.
func (p *printer) table(header []string, rows [][]string) {
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for i, h := range header {
		if i > 0 {
			_, _ = fmt.Fprint(tw, "\t")
		}
		_, _ = fmt.Fprint(tw, h)
	}
	_, _ = fmt.Fprintln(tw)
	for _, row := range rows {
		for i, col := range row {
			if i > 0 {
				_, _ = fmt.Fprint(tw, "\t")
			}
			_, _ = fmt.Fprint(tw, col)
		}
		_, _ = fmt.Fprintln(tw)
	}
	_ = tw.Flush()
}

// kv prints a key-value detail view, or a JSON object with the same keys.
func (p *printer) kv(pairs [][2]string) error {
	if p.format == "json" {
		obj := make(map[string]string, len(pairs))
		for _, pair := range pairs {
			obj[pair[0]] = pair[1]
		}
		return p.json(obj)
	}
	tw := tabwriter.NewWriter(p.w, 0, 4, 2, ' ', 0)
	for _, pair := range pairs {
		_, _ = fmt.Fprintf(tw, "%s:\t%s\n", pair[0], pair[1])
	}
	return tw.Flush()
}
