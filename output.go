package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/samber/lo"

	"github.com/apstndb/chemopt/internal/option"
)

// writeOptionTable writes every option with its kind, current value and
// allowed values as an ASCII table.
func writeOptionTable(w io.Writer, reg *option.Registry) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(
			renderer.NewBlueprint(tw.Rendition{Symbols: tw.NewSymbols(tw.StyleASCII)})),
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithTrimSpace(tw.Off),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	).Configure(func(config *tablewriter.Config) {
		config.Row.Formatting.AutoWrap = tw.WrapNone
	})

	table.Header([]string{"Name", "Kind", "Value", "Allowed", "Description"})

	for _, info := range reg.Infos() {
		if err := table.Append(optionRow(reg, info)); err != nil {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	return nil
}

func optionRow(reg *option.Registry, info option.Info) []string {
	value := ""
	if info.Kind != option.ActionKind {
		v, err := reg.Format(info.Name)
		value = lo.Ternary(err != nil, fmt.Sprintf("<%v>", err), v)
	}
	return []string{
		info.Name,
		info.Kind.String(),
		value,
		strings.Join(info.Allowed, "|"),
		info.Description,
	}
}
