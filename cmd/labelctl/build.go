package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-meshlabel/label"
	"github.com/forestrie/go-meshlabel/routetable"
	"github.com/spf13/cobra"
)

// hopJSON is one hop in a paths file. Scheme is a catalogue name.
type hopJSON struct {
	LabelP string `json:"labelP,omitempty"`
	Key    string `json:"key,omitempty"`
	Scheme string `json:"scheme"`
	LabelN string `json:"labelN,omitempty"`
}

type pathJSON struct {
	ID   string    `json:"id"`
	Hops []hopJSON `json:"hops"`
}

type routeJSON struct {
	ID     string   `json:"id"`
	Label  string   `json:"label"`
	Usable bool     `json:"usable"`
	Hops   []string `json:"hops"`
}

// readPaths decodes a JSON array of paths. A path without an id is named
// "#" and its position in the array. Ids starting with "#" are reserved for
// those names.
func readPaths(r io.Reader) ([]routetable.Request, error) {
	var paths []pathJSON
	if err := json.NewDecoder(r).Decode(&paths); err != nil {
		return nil, fmt.Errorf("decode paths: %w", err)
	}

	reqs := make([]routetable.Request, 0, len(paths))
	for i, p := range paths {
		id := p.ID
		switch {
		case id == "":
			id = "#" + strconv.Itoa(i)
		case strings.HasPrefix(id, "#"):
			return nil, fmt.Errorf("path %d: id %q: ids starting with # are reserved", i, id)
		}
		req := routetable.Request{ID: id, Hops: make([]label.PathHop, 0, len(p.Hops))}
		for j, h := range p.Hops {
			s, err := label.SchemeByName(h.Scheme)
			if err != nil {
				return nil, fmt.Errorf("path %s hop %d: %w", id, j, err)
			}
			req.Hops = append(req.Hops, label.PathHop{
				LabelP: h.LabelP,
				Key:    h.Key,
				Scheme: s,
				LabelN: h.LabelN,
			})
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

func newBuildCmd(log func() logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build labels for a JSON array of paths",
		Long: `Build labels for a JSON array of paths read from --file or stdin:

  [{"id": "a", "hops": [{"scheme": "v358", "labelN": "0000.0000.0000.0013"}, ...]}]

Hops are listed nearest first. Routes too long for a label are reported with
usable=false and the all ones label.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFromCmd(cmd)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			file, _ := cmd.Flags().GetString("file")
			if file != "" && file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			reqs, err := readPaths(in)
			if err != nil {
				return err
			}

			workers, _ := cmd.Flags().GetInt("workers")
			b := routetable.NewBuilder(routetable.WithWorkers(workers), routetable.WithLogger(log()))
			table, err := b.Build(cmd.Context(), reqs)
			if err != nil {
				return err
			}

			routes := table.Routes()
			if p.format == "json" {
				out := make([]routeJSON, 0, len(routes))
				for _, r := range routes {
					out = append(out, routeJSON{ID: r.ID, Label: r.Label, Usable: r.Usable, Hops: r.Hops})
				}
				return p.json(out)
			}
			rows := make([][]string, 0, len(routes))
			for _, r := range routes {
				rows = append(rows, []string{r.ID, r.Label, strconv.FormatBool(r.Usable), strings.Join(r.Hops, " ")})
			}
			p.table([]string{"ID", "LABEL", "USABLE", "HOPS"}, rows)
			return nil
		},
	}
	cmd.Flags().StringP("file", "f", "", "paths file, - or empty for stdin")
	cmd.Flags().Int("workers", routetable.DefaultWorkers, "paths built concurrently")
	return cmd
}
