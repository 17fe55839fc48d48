package viz

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/san-kum/dimvar/internal/dimvar"
	"github.com/san-kum/dimvar/internal/sheet"
	"github.com/san-kum/dimvar/internal/store"
	"github.com/san-kum/dimvar/internal/units"
)

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(header)
	return t
}

// RenderUnits writes the registry entries with their SI dimension.
func RenderUnits(w io.Writer, list []units.Unit) {
	t := newTable(w, table.Row{"Symbol", "Name", "Factor", "SI"})
	for _, u := range list {
		t.AppendRow(table.Row{
			u.Symbol,
			u.Name,
			strconv.FormatFloat(u.Factor, 'g', -1, 64),
			dimvar.UnitString(u.Base),
		})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d units)\n", len(list))
}

func RenderResults(w io.Writer, results []sheet.Result) {
	t := newTable(w, table.Row{"Name", "Value", "Unit"})
	for _, r := range results {
		t.AppendRow(table.Row{r.Name, r.Value, r.Unit})
	}
	t.Render()
}

func RenderHistory(w io.Writer, records []store.Record) {
	if len(records) == 0 {
		_, _ = fmt.Fprintln(w, "no history")
		return
	}
	t := newTable(w, table.Row{"ID", "Kind", "Time", "Input", "Values"})
	for _, r := range records {
		t.AppendRow(table.Row{
			r.ID,
			r.Kind,
			r.Timestamp.Format("2006-01-02 15:04:05"),
			r.Input,
			r.Count,
		})
	}
	t.Render()
}

func RenderEntries(w io.Writer, entries []store.Entry) {
	t := newTable(w, table.Row{"Name", "Value", "Unit"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.Name, e.Value, e.Unit})
	}
	t.Render()
}
