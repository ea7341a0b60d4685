// Package help renders the command grammar as tables grouped by category.
package help

import "github.com/gosuri/uitable"

type Deps struct {
	NewTable func() *uitable.Table
}

func DefaultDeps() Deps {
	return Deps{
		NewTable: func() *uitable.Table {
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 60
			tbl.Wrap = true
			return tbl
		},
	}
}
