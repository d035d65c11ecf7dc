package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	directdb "github.com/directdb-project/directdb"
	"github.com/directdb-project/directdb/dialect"
)

var operators = map[Operator]bool{
	OpEq: true, OpNeq: true, OpGt: true, OpGte: true,
	OpLt: true, OpLte: true, OpLike: true, OpIn: true,
}

// isColumnType validates create-table type expressions. Types render into
// SQL text unparameterized, so only a plain token shape is allowed.
var isColumnType = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_ (),]*$`)

// Build translates a descriptor into a parameterized statement for the given
// dialect. It is deterministic and performs no I/O. Malformed descriptors
// fail with an error satisfying directdb.ErrValidation; no statement is
// produced.
func Build(d Descriptor, dl dialect.Dialect) (Statement, error) {
	switch d.Kind {
	case KindSelect:
		return buildSelect(d, dl)
	case KindInsert:
		return buildInsert(d, dl)
	case KindUpdate:
		return buildUpdate(d, dl)
	case KindDelete:
		return buildDelete(d, dl)
	case KindRaw:
		return buildRaw(d, dl)
	case KindCreateTable:
		return buildCreateTable(d, dl)
	case KindDropTable:
		return buildDropTable(d, dl)
	default:
		return Statement{}, fmt.Errorf("%w: unknown operation kind %d", directdb.ErrValidation, d.Kind)
	}
}

func buildSelect(d Descriptor, dl dialect.Dialect) (Statement, error) {
	if err := checkIdent(d.Table); err != nil {
		return Statement{}, err
	}
	if d.Limit < 0 {
		return Statement{}, fmt.Errorf("%w: negative limit %d", directdb.ErrValidation, d.Limit)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	if len(d.Projection) == 0 {
		b.WriteString("*")
	} else {
		for i, col := range d.Projection {
			if err := checkIdent(col); err != nil {
				return Statement{}, err
			}
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(dl.Quote(col))
		}
	}
	b.WriteString(" FROM ")
	b.WriteString(dl.Quote(d.Table))

	params, err := writeWhere(&b, d.Filters, dl, nil, 1)
	if err != nil {
		return Statement{}, err
	}

	for i, o := range d.OrderBy {
		if err := checkIdent(o.Column); err != nil {
			return Statement{}, err
		}
		if o.Direction != "ASC" && o.Direction != "DESC" {
			return Statement{}, fmt.Errorf("%w: order direction %q", directdb.ErrValidation, o.Direction)
		}
		if i == 0 {
			b.WriteString(" ORDER BY ")
		} else {
			b.WriteString(", ")
		}
		b.WriteString(dl.Quote(o.Column))
		b.WriteString(" ")
		b.WriteString(o.Direction)
	}

	if d.Limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(d.Limit))
	}

	return Statement{Text: b.String(), Params: params}, nil
}

func buildInsert(d Descriptor, dl dialect.Dialect) (Statement, error) {
	if err := checkIdent(d.Table); err != nil {
		return Statement{}, err
	}
	if len(d.Assignments) == 0 {
		return Statement{}, fmt.Errorf("%w: insert with no assignments", directdb.ErrValidation)
	}

	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(dl.Quote(d.Table))
	b.WriteString(" (")
	params := make([]any, 0, len(d.Assignments))
	for i, a := range d.Assignments {
		if err := checkIdent(a.Column); err != nil {
			return Statement{}, err
		}
		if err := checkScalar(a.Column, a.Value); err != nil {
			return Statement{}, err
		}
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(dl.Quote(a.Column))
		params = append(params, dl.BindValue(a.Value))
	}
	b.WriteString(") VALUES (")
	for i := range d.Assignments {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(dl.Placeholder(i + 1))
	}
	b.WriteString(")")

	return Statement{Text: b.String(), Params: params}, nil
}

func buildUpdate(d Descriptor, dl dialect.Dialect) (Statement, error) {
	if err := checkIdent(d.Table); err != nil {
		return Statement{}, err
	}
	if len(d.Assignments) == 0 {
		return Statement{}, fmt.Errorf("%w: update with no assignments", directdb.ErrValidation)
	}

	var b strings.Builder
	b.WriteString("UPDATE ")
	b.WriteString(dl.Quote(d.Table))
	b.WriteString(" SET ")
	params := make([]any, 0, len(d.Assignments)+len(d.Filters))
	for i, a := range d.Assignments {
		if err := checkIdent(a.Column); err != nil {
			return Statement{}, err
		}
		if err := checkScalar(a.Column, a.Value); err != nil {
			return Statement{}, err
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(dl.Quote(a.Column))
		b.WriteString(" = ")
		b.WriteString(dl.Placeholder(i + 1))
		params = append(params, dl.BindValue(a.Value))
	}

	// Filter placeholders continue numbering after the assignments.
	params, err := writeWhere(&b, d.Filters, dl, params, len(d.Assignments)+1)
	if err != nil {
		return Statement{}, err
	}

	return Statement{Text: b.String(), Params: params}, nil
}

func buildDelete(d Descriptor, dl dialect.Dialect) (Statement, error) {
	if err := checkIdent(d.Table); err != nil {
		return Statement{}, err
	}

	var b strings.Builder
	b.WriteString("DELETE FROM ")
	b.WriteString(dl.Quote(d.Table))

	params, err := writeWhere(&b, d.Filters, dl, nil, 1)
	if err != nil {
		return Statement{}, err
	}

	return Statement{Text: b.String(), Params: params}, nil
}

// buildRaw passes caller-supplied SQL and parameters through unchanged. The
// only check on this path is placeholder/parameter count consistency.
func buildRaw(d Descriptor, dl dialect.Dialect) (Statement, error) {
	if strings.TrimSpace(d.SQL) == "" {
		return Statement{}, fmt.Errorf("%w: empty raw statement", directdb.ErrValidation)
	}
	if err := dl.CheckPlaceholders(d.SQL, len(d.Params)); err != nil {
		return Statement{}, fmt.Errorf("%w: %w", directdb.ErrValidation, err)
	}
	return Statement{Text: d.SQL, Params: d.Params}, nil
}

func buildCreateTable(d Descriptor, dl dialect.Dialect) (Statement, error) {
	if err := checkIdent(d.Table); err != nil {
		return Statement{}, err
	}
	if len(d.Columns) == 0 {
		return Statement{}, fmt.Errorf("%w: create table with no columns", directdb.ErrValidation)
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE IF NOT EXISTS ")
	b.WriteString(dl.Quote(d.Table))
	b.WriteString(" (")
	for i, col := range d.Columns {
		if err := checkIdent(col.Name); err != nil {
			return Statement{}, err
		}
		if !isColumnType.MatchString(col.Type) {
			return Statement{}, fmt.Errorf("%w: column type %q", directdb.ErrValidation, col.Type)
		}
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(dl.Quote(col.Name))
		b.WriteString(" ")
		b.WriteString(col.Type)
	}
	b.WriteString(")")

	return Statement{Text: b.String()}, nil
}

func buildDropTable(d Descriptor, dl dialect.Dialect) (Statement, error) {
	if err := checkIdent(d.Table); err != nil {
		return Statement{}, err
	}
	return Statement{Text: "DROP TABLE IF EXISTS " + dl.Quote(d.Table)}, nil
}

// writeWhere renders the WHERE clause, appending bound values to params.
// pos is the 1-based index of the next placeholder. Returns the extended
// parameter list.
func writeWhere(b *strings.Builder, filters []Filter, dl dialect.Dialect, params []any, pos int) ([]any, error) {
	for i, f := range filters {
		if err := checkIdent(f.Column); err != nil {
			return nil, err
		}
		if !operators[f.Op] {
			return nil, fmt.Errorf("%w: unsupported operator %q", directdb.ErrValidation, f.Op)
		}
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}

		if f.Op == OpIn {
			values, ok := f.Value.([]any)
			if !ok {
				return nil, fmt.Errorf("%w: IN filter on %q requires a value sequence", directdb.ErrValidation, f.Column)
			}
			if len(values) == 0 {
				return nil, fmt.Errorf("%w: IN filter on %q with empty sequence", directdb.ErrValidation, f.Column)
			}
			b.WriteString(dl.Quote(f.Column))
			b.WriteString(" IN (")
			for j, v := range values {
				if err := checkScalar(f.Column, v); err != nil {
					return nil, err
				}
				if j > 0 {
					b.WriteString(",")
				}
				b.WriteString(dl.Placeholder(pos))
				pos++
				params = append(params, dl.BindValue(v))
			}
			b.WriteString(")")
			continue
		}

		if err := checkScalar(f.Column, f.Value); err != nil {
			return nil, err
		}
		b.WriteString(dl.Quote(f.Column))
		b.WriteString(" ")
		b.WriteString(string(f.Op))
		b.WriteString(" ")
		b.WriteString(dl.Placeholder(pos))
		pos++
		params = append(params, dl.BindValue(f.Value))
	}
	return params, nil
}

func checkIdent(name string) error {
	if !dialect.ValidIdentifier(name) {
		return fmt.Errorf("%w: invalid identifier %q", directdb.ErrValidation, name)
	}
	return nil
}

func checkScalar(column string, v any) error {
	switch v.(type) {
	case nil, bool, string, []byte,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, time.Time:
		return nil
	}
	return fmt.Errorf("%w: non-scalar value %T for column %q", directdb.ErrValidation, v, column)
}
