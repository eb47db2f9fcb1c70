// Package lookup runs the one-shot catalog commands.
package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/glossary/pkg/catalog"
	"tableflip.dev/glossary/pkg/printers"
	"tableflip.dev/glossary/pkg/recipe"
)

// Output selects how results are written.
type Output struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func (o Output) writer() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

func (o Output) printer() *printers.PrettyPrint {
	return &printers.PrettyPrint{Out: o.writer(), Width: 60}
}

func (o Output) encode(v any) error {
	enc := json.NewEncoder(o.writer())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var errNoService = errors.New("lookup requires a catalog service")

// List prints one listing page.
type List struct {
	Service *catalog.Service
	Options catalog.ListOptions
	Output
}

func (l *List) Do(ctx context.Context) error {
	if l.Service == nil {
		return errNoService
	}
	page, err := l.Service.ListRecipes(ctx, l.Options)
	if err != nil {
		return err
	}
	if l.JSON {
		return l.encode(page)
	}
	pp := l.printer()
	pp.NewLine()
	pp.Recipes(recipe.Page{Recipes: page.Recipes, TotalCount: page.TotalCount}, page.Page, page.TotalPages)
	return nil
}

// Detail prints one recipe.
type Detail struct {
	Service *catalog.Service
	ID      string
	Output
}

func (d *Detail) Do(ctx context.Context) error {
	if d.Service == nil {
		return errNoService
	}
	r, err := d.Service.Recipe(ctx, d.ID)
	if err != nil {
		return err
	}
	if d.JSON {
		return d.encode(r)
	}
	pp := d.printer()
	pp.NewLine()
	pp.Detail(r)
	return nil
}

// Author prints one page of an author's recipes.
type Author struct {
	Service *catalog.Service
	Name    string
	Page    int
	Output
}

func (a *Author) Do(ctx context.Context) error {
	if a.Service == nil {
		return errNoService
	}
	page, err := a.Service.AuthorRecipes(ctx, a.Name, a.Page)
	if err != nil {
		return err
	}
	if a.JSON {
		return a.encode(page)
	}
	pp := a.printer()
	pp.NewLine()
	pp.Author(page.Author, page.Count, page.Page, page.TotalPages, page.Recipes)
	return nil
}

// Top prints the leaderboards.
type Top struct {
	Service *catalog.Service
	Output
}

func (t *Top) Do(ctx context.Context) error {
	if t.Service == nil {
		return errNoService
	}
	l, err := t.Service.TopLists(ctx)
	if err != nil {
		return err
	}
	if t.JSON {
		return t.encode(l)
	}
	pp := t.printer()
	pp.NewLine()
	pp.Leaderboards(l)
	return nil
}

// Ingredients prints the filter vocabulary.
type Ingredients struct {
	Service *catalog.Service
	Output
}

func (i *Ingredients) Do(ctx context.Context) error {
	if i.Service == nil {
		return errNoService
	}
	items, err := i.Service.Ingredients(ctx)
	if err != nil {
		return err
	}
	if i.JSON {
		return i.encode(map[string]any{"ingredients": items, "count": len(items)})
	}
	pp := i.printer()
	pp.NewLine()
	pp.Ingredients(items)
	return nil
}

// Count prints the catalog size.
type Count struct {
	Service *catalog.Service
	Output
}

func (c *Count) Do(ctx context.Context) error {
	if c.Service == nil {
		return errNoService
	}
	n, err := c.Service.Count(ctx)
	if err != nil {
		return err
	}
	if c.JSON {
		return c.encode(map[string]int{"count": n})
	}
	c.printer().Count(n)
	return nil
}
