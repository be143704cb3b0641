package render

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// MenuOption is one numbered entry of a menu.
type MenuOption struct {
	Key   string
	Label string
}

// NumberedOptions numbers labels from 1.
func NumberedOptions(labels []string) []MenuOption {
	options := make([]MenuOption, 0, len(labels))
	for i, label := range labels {
		options = append(options, MenuOption{Key: strconv.Itoa(i + 1), Label: label})
	}
	return options
}

// Menu renders a borderless two-column menu under its title. The title is
// printed on its own line since a table title wraps at the table's width.
func (r *Renderer) Menu(title, column string, options []MenuOption) {
	if r.color {
		title = text.Bold.Sprint(title)
	}
	r.Line("%s", title)

	t := r.newTable()
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false

	t.AppendHeader(table.Row{"Option", column})
	for _, opt := range options {
		t.AppendRow(table.Row{opt.Key, opt.Label})
	}
	if r.color {
		t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Colors: text.Colors{text.FgCyan}}})
	}
	t.Render()
}
