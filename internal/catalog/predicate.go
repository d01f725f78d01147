package catalog

import (
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/CryptoCrazy982/awesomecraft-server/internal/model"
)

// Cond is one WHERE condition with its bind arguments. Conditions compose
// with AND; the repository applies them verbatim.
type Cond struct {
	Expr string
	Args []any
}

// Predicate is the fully resolved filter: every condition a public query is
// allowed to express, plus the hard Active-status gate.
type Predicate struct {
	Conds []Cond
}

func (p *Predicate) add(expr string, args ...any) {
	p.Conds = append(p.Conds, Cond{Expr: expr, Args: args})
}

// likeEscaper escapes LIKE/ILIKE pattern metacharacters so user-supplied
// fragments always match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike returns s with all pattern metacharacters escaped.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// containsPattern builds a case-insensitive substring pattern from untrusted
// input.
func containsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// statusActive is the boundary between admin and public views: the public
// engine never returns anything that is not Active.
func statusActive(p *Predicate) {
	p.add("status = ?", model.StatusActive)
}

// categoryAnyOf matches templates associated with any of the given category
// identifiers through the template_categories join table.
func categoryAnyOf(p *Predicate, ids []uuid.UUID) {
	if len(ids) == 0 {
		return
	}
	p.add("id IN (SELECT template_id FROM template_categories WHERE category_id IN ?)", ids)
}

// arrayAnyFold matches when any supplied value equals (case-insensitively)
// any element of the text[] column.
func arrayAnyFold(p *Predicate, column string, values []string) {
	if len(values) == 0 {
		return
	}
	lowered := make([]string, len(values))
	for i, v := range values {
		lowered[i] = strings.ToLower(v)
	}
	p.add("EXISTS (SELECT 1 FROM unnest("+column+") AS tag WHERE LOWER(tag) IN ?)", lowered)
}

// arrayAnyContains matches when any element of the text[] column contains
// (case-insensitively) any supplied value.
func arrayAnyContains(p *Predicate, column string, values []string) {
	if len(values) == 0 {
		return
	}
	patterns := make([]string, len(values))
	for i, v := range values {
		patterns[i] = containsPattern(v)
	}
	p.add("EXISTS (SELECT 1 FROM unnest("+column+") AS tag WHERE tag ILIKE ANY (?))", pq.Array(patterns))
}

// equalFold matches a single-valued column with case-insensitive equality.
func equalFold(p *Predicate, column, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	p.add("LOWER("+column+") = ?", strings.ToLower(strings.TrimSpace(value)))
}

// BuildPredicate translates a Filter plus the already-resolved category
// identifier set into the executable predicate. Category resolution (parent
// expansion) happens upstream in the service, which is the only place with
// category store access.
func BuildPredicate(f Filter, categoryIDs []uuid.UUID) Predicate {
	var p Predicate

	statusActive(&p)
	categoryAnyOf(&p, categoryIDs)

	arrayAnyFold(&p, "style_tags", SplitValues(f.Style))
	arrayAnyContains(&p, "color_tags", SplitValues(f.Color))
	arrayAnyFold(&p, "languages", SplitValues(f.Language))
	arrayAnyFold(&p, "product_types", SplitValues(f.ProductType))

	equalFold(&p, "editable_level", f.EditableLevel)
	equalFold(&p, "dimension", f.Dimension)

	if min, ok := ParsePrice(f.MinPrice); ok {
		p.add("sale_price >= ?", min)
	}
	if max, ok := ParsePrice(f.MaxPrice); ok {
		p.add("sale_price <= ?", max)
	}

	return p
}

// searchColumns are the fields the free-text search spans.
var searchColumns = []string{
	"title",
	"description",
	"meta_keywords",
	"array_to_string(style_tags, ' ')",
	"array_to_string(color_tags, ' ')",
	"array_to_string(product_types, ' ')",
}

// BuildSearchPredicate composes the free-text search: case-insensitive
// substring containment across title, description, keywords, and tag
// arrays, restricted to Active status. The query fragment is escaped so
// pattern metacharacters match literally.
func BuildSearchPredicate(q string) Predicate {
	var p Predicate
	statusActive(&p)

	pattern := containsPattern(strings.TrimSpace(q))
	exprs := make([]string, len(searchColumns))
	args := make([]any, len(searchColumns))
	for i, col := range searchColumns {
		exprs[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	p.add("("+strings.Join(exprs, " OR ")+")", args...)
	return p
}
