package style

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewDefaultTableStyle is the colored style of the snapshot tables.
func NewDefaultTableStyle() *table.Style {
	style := table.Style{
		Name:    "StyleRounded",
		Box:     table.StyleBoxRounded,
		Format:  table.FormatOptionsDefault,
		HTML:    table.DefaultHTMLOptions,
		Options: table.OptionsDefault,
		Title:   table.TitleOptionsDefault,
		Color:   table.ColorOptionsYellowWhiteOnBlack,
	}
	style.Color.Row = text.Colors{text.FgHiYellow, text.BgHiBlack}
	style.Color.RowAlternate = text.Colors{text.FgYellow, text.BgBlack}
	return &style
}

// NewPlainTableStyle renders without colors, for logs and pipes.
func NewPlainTableStyle() *table.Style {
	style := table.StyleRounded
	style.Name = "StylePlain"
	style.Format.Header = text.FormatUpper
	return &style
}

// TableStyle picks the colored or the plain style.
func TableStyle(withColor bool) *table.Style {
	if withColor {
		return NewDefaultTableStyle()
	}
	return NewPlainTableStyle()
}
