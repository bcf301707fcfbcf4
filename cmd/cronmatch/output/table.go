// Package output renders CLI results.
package output

import (
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable writes a formatted table of field expansions to stdout.
func RenderTable(headers []string, rows [][]interface{}) {
	WriteTable(os.Stdout, headers, rows)
}

// WriteTable writes a formatted table to w.
func WriteTable(w io.Writer, headers []string, rows [][]interface{}) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	t.AppendHeader(header)

	for _, row := range rows {
		t.AppendRow(table.Row(row))
	}

	t.Render()
}
