package queries

import (
	"context"
	"fmt"
	"strings"

	"catalog/internal/core/domain/model/content"
	"catalog/internal/core/domain/model/module"
	"catalog/internal/core/domain/model/ordering"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// OrderedTable names a table holding a position column and the scope that
// partitions it.
type OrderedTable struct {
	Model string
	Scope ordering.Scope
}

// DefaultOrderedTables are the ordered tables of the catalog.
var DefaultOrderedTables = []OrderedTable{
	{Model: module.Model, Scope: module.Scope},
	{Model: content.Model, Scope: content.Scope},
}

type FindPositionConflictsQueryHandler struct {
	db     *gorm.DB
	tables []OrderedTable
}

// NewFindPositionConflictsQueryHandler inspects tables, or
// DefaultOrderedTables when none are given.
func NewFindPositionConflictsQueryHandler(db *gorm.DB, tables ...OrderedTable) FindPositionConflictsQueryHandler {
	if len(tables) == 0 {
		tables = DefaultOrderedTables
	}
	return FindPositionConflictsQueryHandler{db: db, tables: tables}
}

func (h FindPositionConflictsQueryHandler) Handle(
	ctx context.Context,
	query FindPositionConflictsQuery,
) (FindPositionConflictsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return FindPositionConflictsQueryResponse{}, err
	}

	resp := FindPositionConflictsQueryResponse{
		Duplicates: make([]PositionDuplicate, 0),
		Gaps:       make([]PositionGap, 0),
	}

	for _, table := range h.tables {
		duplicates, err := h.duplicates(ctx, table)
		if err != nil {
			return FindPositionConflictsQueryResponse{}, fmt.Errorf("%s duplicates: %w", table.Model, err)
		}
		resp.Duplicates = append(resp.Duplicates, duplicates...)

		gaps, err := h.gaps(ctx, table)
		if err != nil {
			return FindPositionConflictsQueryResponse{}, fmt.Errorf("%s gaps: %w", table.Model, err)
		}
		resp.Gaps = append(resp.Gaps, gaps...)
	}

	return resp, nil
}

func (h FindPositionConflictsQueryHandler) duplicates(ctx context.Context, table OrderedTable) ([]PositionDuplicate, error) {
	scopeKey, groupBy := scopeSQL(table.Scope)
	groupBy = append(groupBy, `"position"`)

	//nolint:gosec // identifiers are quoted and come from OrderedTable
	sql := fmt.Sprintf(`
		SELECT %s AS scope_key, "position", COUNT(*) AS cnt
		FROM %s
		GROUP BY %s
		HAVING COUNT(*) > 1
		ORDER BY scope_key, "position"
	`, scopeKey, pq.QuoteIdentifier(table.Model), strings.Join(groupBy, ", "))

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PositionDuplicate, 0)
	for rows.Next() {
		d := PositionDuplicate{Model: table.Model}
		if err = rows.Scan(&d.Scope, &d.Position, &d.Count); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (h FindPositionConflictsQueryHandler) gaps(ctx context.Context, table OrderedTable) ([]PositionGap, error) {
	scopeKey, groupBy := scopeSQL(table.Scope)
	group := ""
	if len(groupBy) > 0 {
		group = "GROUP BY " + strings.Join(groupBy, ", ")
	}

	//nolint:gosec // identifiers are quoted and come from OrderedTable
	sql := fmt.Sprintf(`
		SELECT %s AS scope_key,
			MAX("position") AS max_position,
			MAX("position") + 1 - COUNT(DISTINCT "position") AS missing
		FROM %s
		%s
		HAVING MAX("position") + 1 > COUNT(DISTINCT "position")
		ORDER BY scope_key
	`, scopeKey, pq.QuoteIdentifier(table.Model), group)

	rows, err := h.db.WithContext(ctx).Raw(sql).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]PositionGap, 0)
	for rows.Next() {
		g := PositionGap{Model: table.Model}
		if err = rows.Scan(&g.Scope, &g.MaxPosition, &g.Missing); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// scopeSQL renders the scope columns as a single text key and as a GROUP BY
// list. A global scope yields an empty key and no grouping.
func scopeSQL(scope ordering.Scope) (string, []string) {
	fields := scope.Fields()
	if len(fields) == 0 {
		return "''", nil
	}

	cols := make([]string, 0, len(fields))
	texts := make([]string, 0, len(fields))
	for _, f := range fields {
		col := pq.QuoteIdentifier(f)
		cols = append(cols, col)
		texts = append(texts, fmt.Sprintf("COALESCE(%s::text, '<null>')", col))
	}
	return fmt.Sprintf("CONCAT_WS('|', %s)", strings.Join(texts, ", ")), cols
}
