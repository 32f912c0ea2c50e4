package main

import (
	"strconv"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/forestrie/go-meshlabel/label"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var log logger.Logger

	cmd := &cobra.Command{
		Use:          "labelctl",
		Short:        "Splice, unsplice and re-encode switch labels",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			logger.New(level)
			log = logger.Sugar.WithServiceName("labelctl")
			return nil
		},
	}

	cmd.PersistentFlags().String("log-level", "NOOP", "log level: NOOP, DEBUG, INFO, WARN or ERROR")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table or json")

	cmd.AddCommand(
		newSpliceCmd(),
		newUnspliceCmd(),
		newRoutesThroughCmd(),
		newFormCmd(),
		newOneHopCmd(),
		newReencodeCmd(),
		newBuildCmd(func() logger.Logger { return log }),
		newSchemesCmd(),
	)
	return cmd
}

func newSpliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "splice LABEL LABEL [LABEL...]",
		Short: "Splice labels: splice(a, b, c) is splice(splice(a, b), c)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFromCmd(cmd)
			if err != nil {
				return err
			}
			out, err := label.Splice(args...)
			if err != nil {
				return err
			}
			return p.kv([][2]string{{"label", out}})
		},
	}
}

func newUnspliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unsplice DEST MIDPATH",
		Short: "Remove MIDPATH from the bottom of DEST",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFromCmd(cmd)
			if err != nil {
				return err
			}
			out, err := label.Unsplice(args[0], args[1])
			if err != nil {
				return err
			}
			return p.kv([][2]string{{"label", out}})
		},
	}
}

func newRoutesThroughCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes-through DEST MIDPATH",
		Short: "Report whether DEST continues the route of MIDPATH",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFromCmd(cmd)
			if err != nil {
				return err
			}
			ok, err := label.RoutesThrough(args[0], args[1])
			if err != nil {
				return err
			}
			return p.kv([][2]string{{"routesThrough", strconv.FormatBool(ok)}})
		},
	}
}

func schemeFromCmd(cmd *cobra.Command) (label.Scheme, error) {
	name, _ := cmd.Flags().GetString("scheme")
	return label.SchemeByName(name)
}

func newFormCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "form LABEL",
		Short: "Print the index of the form LABEL's lowest director uses, -1 if none",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFromCmd(cmd)
			if err != nil {
				return err
			}
			s, err := schemeFromCmd(cmd)
			if err != nil {
				return err
			}
			form, err := label.GetEncodingFormString(args[0], s)
			if err != nil {
				return err
			}
			return p.kv([][2]string{{"scheme", s.String()}, {"form", strconv.Itoa(form)}})
		},
	}
	cmd.Flags().String("scheme", "v358", "encoding scheme name")
	return cmd
}

func newOneHopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "one-hop LABEL",
		Short: "Report whether LABEL holds a single director",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFromCmd(cmd)
			if err != nil {
				return err
			}
			s, err := schemeFromCmd(cmd)
			if err != nil {
				return err
			}
			ok, err := label.IsOneHop(args[0], s)
			if err != nil {
				return err
			}
			return p.kv([][2]string{{"scheme", s.String()}, {"oneHop", strconv.FormatBool(ok)}})
		},
	}
	cmd.Flags().String("scheme", "v358", "encoding scheme name")
	return cmd
}

// parseForm accepts a form index or "canonical".
func parseForm(s string) (int, error) {
	if strings.EqualFold(s, "canonical") {
		return label.FormCanonical, nil
	}
	return strconv.Atoi(s)
}

func newReencodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reencode LABEL",
		Short: "Re-encode the lowest director of LABEL into another form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFromCmd(cmd)
			if err != nil {
				return err
			}
			s, err := schemeFromCmd(cmd)
			if err != nil {
				return err
			}
			formFlag, _ := cmd.Flags().GetString("form")
			form, err := parseForm(formFlag)
			if err != nil {
				return err
			}
			out, err := label.ReEncode(args[0], s, form)
			if err != nil {
				return err
			}
			return p.kv([][2]string{{"scheme", s.String()}, {"label", out}})
		},
	}
	cmd.Flags().String("scheme", "v358", "encoding scheme name")
	cmd.Flags().String("form", "canonical", "target form index, or canonical")
	return cmd
}

func newSchemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the encoding scheme catalogue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := printerFromCmd(cmd)
			if err != nil {
				return err
			}
			type formRow struct {
				Scheme    string `json:"scheme"`
				Form      int    `json:"form"`
				BitCount  int    `json:"bitCount"`
				Prefix    string `json:"prefix"`
				PrefixLen int    `json:"prefixLen"`
			}
			var rows []formRow
			for _, s := range label.Schemes() {
				for i, f := range s.Forms() {
					rows = append(rows, formRow{
						Scheme:    s.String(),
						Form:      i,
						BitCount:  f.BitCount,
						Prefix:    strconv.FormatUint(f.Prefix, 16),
						PrefixLen: f.PrefixLen,
					})
				}
			}
			if p.format == "json" {
				return p.json(rows)
			}
			table := make([][]string, 0, len(rows))
			for _, r := range rows {
				table = append(table, []string{
					r.Scheme, strconv.Itoa(r.Form), strconv.Itoa(r.BitCount), r.Prefix, strconv.Itoa(r.PrefixLen),
				})
			}
			p.table([]string{"SCHEME", "FORM", "BITS", "PREFIX", "PREFIXLEN"}, table)
			return nil
		},
	}
}
