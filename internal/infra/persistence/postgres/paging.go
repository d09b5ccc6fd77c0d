package postgres

import (
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sortColumns whitelists the sort keys a listing accepts, mapping API names to SQL columns.
type sortColumns struct {
	columns  map[string]string
	fallback string // API key used when the request names none or an unknown one.
	tieBreak string // Column appended so equal sort values page deterministically.
}

func (s sortColumns) orderBy(page entity.PageRequest) clause.OrderBy {
	column, ok := s.columns[page.SortBy]
	if !ok {
		column = s.columns[s.fallback]
	}
	desc := strings.EqualFold(page.Direction, entity.SortDesc)

	orderBy := clause.OrderBy{Columns: []clause.OrderByColumn{
		{Column: clause.Column{Name: column, Raw: true}, Desc: desc},
	}}
	if s.tieBreak != "" && s.tieBreak != column {
		orderBy.Columns = append(orderBy.Columns, clause.OrderByColumn{
			Column: clause.Column{Name: s.tieBreak, Raw: true},
			Desc:   desc,
		})
	}

	return orderBy
}

// findPage counts the rows selected by query, then loads the requested page of them with
// the named associations preloaded.
func findPage[M any](query *gorm.DB, page entity.PageRequest, sorts sortColumns, preloads ...string) ([]*M, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Model(new(M)).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count rows")
	}

	rows := make([]*M, 0, page.Size)
	if total == 0 || int64(page.Offset()) >= total {
		return rows, total, nil
	}

	for _, association := range preloads {
		query = query.Preload(association)
	}

	if err := query.
		Clauses(sorts.orderBy(page)).
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&rows).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to load page")
	}

	return rows, total, nil
}

// containsPattern builds a case-insensitive LIKE pattern, escaping LIKE metacharacters.
func containsPattern(keyword string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(keyword))

	return "%" + strings.ToLower(escaped) + "%"
}
