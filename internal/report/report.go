// Package report renders a spanning forest for humans or machines.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spanforest/network"
)

const (
	FormatText  = "text"
	FormatTable = "table"
	FormatJson  = "json"
	FormatYaml  = "yaml"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists the accepted values of Write's format argument.
var Formats = []string{FormatText, FormatTable, FormatJson, FormatYaml}

// Write renders f to w in the given format.
func Write(w io.Writer, format string, f network.Forest) error {
	switch format {
	case FormatText:
		return writeText(w, f)
	case FormatTable:
		return writeTable(w, f)
	case FormatJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(f)
	case FormatYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(f); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w %q: expected one of %v", ErrUnknownFormat, format, Formats)
	}
}

// writeText prints one "from, to weight" line per edge, a blank line and the sum.
func writeText(w io.Writer, f network.Forest) error {
	for _, e := range f.Edges {
		if _, err := fmt.Fprintf(w, "%s, %s %d\n", e.From, e.To, e.Weight); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nSum of all distances:%d\n", f.Total)

	return err
}

func writeTable(w io.Writer, f network.Forest) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "From", "To", "Weight"})
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
	})
	for i, e := range f.Edges {
		table.Append([]string{strconv.Itoa(i + 1), e.From, e.To, strconv.FormatInt(e.Weight, 10)})
	}
	table.SetFooter([]string{"", "", "Total", strconv.FormatInt(f.Total, 10)})
	table.Render()

	return nil
}
