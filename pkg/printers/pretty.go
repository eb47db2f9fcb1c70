// Package printers renders catalog data for the one-shot commands.
package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/glossary/pkg/recipe"
	"tableflip.dev/glossary/pkg/timeutil"
)

// PrettyPrint writes colored tables. Out defaults to color.Output.
type PrettyPrint struct {
	Out io.Writer
	// Width wraps long columns; zero leaves them alone.
	Width uint
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %s", humanize.Comma(int64(count)))

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " "+noun)
	default:
		_, _ = c.Fprintln(pp.out(), " "+noun+"s")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

func (pp *PrettyPrint) table() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.Width > 0 {
		tbl.MaxColWidth = pp.Width
		tbl.Wrap = true
	}
	return tbl
}

func (pp *PrettyPrint) flush(tbl *uitable.Table) {
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Recipes prints one listing page with a "page x of y" footer.
func (pp *PrettyPrint) Recipes(page recipe.Page, number, pages int) {
	if len(page.Recipes) == 0 {
		pp.none()
	} else {
		bold := color.New(color.Bold)
		id := color.New(color.FgHiYellow, color.Faint)

		tbl := pp.table()
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Name"), bold.Sprint("Author"), bold.Sprint("# of Ingr."), bold.Sprint("Skill Level"))
		for _, r := range page.Recipes {
			tbl.AddRow(id.Sprint(r.ID), r.Name, r.AuthorName, r.IngredientCount, skill(r.SkillLevel))
		}
		tbl.RightAlign(3)
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "page %d of %d (%s recipes)\n", number, pages, humanize.Comma(int64(page.TotalCount)))
}

// Detail prints a single recipe.
func (pp *PrettyPrint) Detail(d recipe.Detail) {
	pp.Title(d.Name)

	tbl := pp.table()
	tbl.AddRow("ID", d.ID)
	tbl.AddRow("Preparation", timeutil.FormatSeconds(d.PreparationTime))
	tbl.AddRow("Cooking", timeutil.FormatSeconds(d.CookingTime))
	if tags := recipe.Tags(d.Collections); len(tags) > 0 {
		tbl.AddRow("Collections", strings.Join(tags, ", "))
	}
	if tags := recipe.Tags(d.Keywords); len(tags) > 0 {
		tbl.AddRow("Keywords", strings.Join(tags, ", "))
	}
	if tags := recipe.Tags(d.DietTypes); len(tags) > 0 {
		tbl.AddRow("Diet", strings.Join(tags, ", "))
	}
	tbl.RightAlign(0)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	if d.Description != "" {
		pp.NewLine()
		_, _ = fmt.Fprintln(pp.out(), d.Description)
	}

	pp.NewLine()
	pp.TitleWithCount("Ingredients", len(d.Ingredients), "ingredient")
	for _, ing := range d.Ingredients {
		_, _ = fmt.Fprintf(pp.out(), "  • %s\n", ing)
	}

	pp.NewLine()
	pp.Title("Similar recipes")
	if len(d.SimilarRecipes) == 0 {
		pp.none()
		return
	}
	tbl = pp.table()
	for i, s := range d.SimilarRecipes {
		tbl.AddRow(fmt.Sprintf("%d.", i+1), s.Name, fmt.Sprintf("%.2f", s.SimilarityScore), s.ID)
	}
	tbl.RightAlign(0)
	pp.flush(tbl)
}

// Author prints one page of an author's recipes.
func (pp *PrettyPrint) Author(name string, count, number, pages int, refs []recipe.AuthorRef) {
	pp.TitleWithCount(name, count, "recipe")
	if len(refs) == 0 {
		pp.none()
	} else {
		id := color.New(color.FgHiYellow, color.Faint)
		tbl := pp.table()
		for _, r := range refs {
			tbl.AddRow(id.Sprint(r.ID), r.Name)
		}
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}
	f := color.New(color.Faint)
	_, _ = f.Fprintf(pp.out(), "page %d of %d\n", number, pages)
}

// Leaderboards prints the three top-5 lists.
func (pp *PrettyPrint) Leaderboards(l recipe.Leaderboards) {
	pp.Title("Most common ingredients")
	if len(l.Ingredients) == 0 {
		pp.none()
	} else {
		tbl := pp.table()
		for i, ing := range l.Ingredients {
			tbl.AddRow(fmt.Sprintf("%d.", i+1), recipe.CapitalizeFirst(ing.Name), humanize.Comma(int64(ing.RecipeCount)))
		}
		tbl.RightAlign(2)
		pp.flush(tbl)
	}

	pp.Title("Most prolific authors")
	if len(l.Authors) == 0 {
		pp.none()
	} else {
		tbl := pp.table()
		for i, a := range l.Authors {
			tbl.AddRow(fmt.Sprintf("%d.", i+1), a.AuthorName, humanize.Comma(int64(a.RecipeCount)))
		}
		tbl.RightAlign(2)
		pp.flush(tbl)
	}

	pp.Title("Most complex recipes")
	if len(l.Complex) == 0 {
		pp.none()
		return
	}
	tbl := pp.table()
	for i, r := range l.Complex {
		tbl.AddRow(fmt.Sprintf("%d.", i+1), r.Name, r.AuthorName, r.IngredientCount)
	}
	tbl.RightAlign(3)
	pp.flush(tbl)
}

// Ingredients prints the filter vocabulary in columns.
func (pp *PrettyPrint) Ingredients(items []recipe.IngredientOption) {
	pp.TitleWithCount("Ingredients", len(items), "ingredient")
	if len(items) == 0 {
		pp.none()
		return
	}
	const cols = 4
	tbl := pp.table()
	row := make([]interface{}, 0, cols)
	for _, it := range items {
		row = append(row, it.Name)
		if len(row) == cols {
			tbl.AddRow(row...)
			row = row[:0]
		}
	}
	if len(row) > 0 {
		tbl.AddRow(row...)
	}
	pp.flush(tbl)
}

// Count prints the catalog size.
func (pp *PrettyPrint) Count(n int) {
	_, _ = fmt.Fprintf(pp.out(), "%s recipes\n", humanize.Comma(int64(n)))
}

func skill(level string) string {
	switch strings.ToLower(recipe.SkillClass(level)) {
	case "easy":
		return color.GreenString(level)
	case "moreeffort":
		return color.YellowString(level)
	case "achallenge":
		return color.RedString(level)
	}
	return level
}
