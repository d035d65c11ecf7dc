package query

// Kind identifies the logical operation a descriptor requests.
type Kind int

const (
	KindSelect Kind = iota
	KindInsert
	KindUpdate
	KindDelete
	KindRaw
	KindCreateTable
	KindDropTable
)

// Operator is a filter comparison operator.
type Operator string

const (
	OpEq   Operator = "="
	OpNeq  Operator = "!="
	OpGt   Operator = ">"
	OpGte  Operator = ">="
	OpLt   Operator = "<"
	OpLte  Operator = "<="
	OpLike Operator = "LIKE"
	OpIn   Operator = "IN"
)

// Filter is one WHERE constraint: column, operator, value. Filters on a
// descriptor are joined with AND in order.
type Filter struct {
	Column string
	Op     Operator
	Value  any
}

// Eq constrains a column to equal a value.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Op: OpEq, Value: value}
}

// Neq constrains a column to differ from a value.
func Neq(column string, value any) Filter {
	return Filter{Column: column, Op: OpNeq, Value: value}
}

// Gt constrains a column to be greater than a value.
func Gt(column string, value any) Filter {
	return Filter{Column: column, Op: OpGt, Value: value}
}

// Gte constrains a column to be greater than or equal to a value.
func Gte(column string, value any) Filter {
	return Filter{Column: column, Op: OpGte, Value: value}
}

// Lt constrains a column to be less than a value.
func Lt(column string, value any) Filter {
	return Filter{Column: column, Op: OpLt, Value: value}
}

// Lte constrains a column to be less than or equal to a value.
func Lte(column string, value any) Filter {
	return Filter{Column: column, Op: OpLte, Value: value}
}

// Like constrains a column to match a SQL LIKE pattern.
func Like(column string, pattern string) Filter {
	return Filter{Column: column, Op: OpLike, Value: pattern}
}

// Contains constrains a column to contain a substring, wrapping it in % for
// a LIKE match.
func Contains(column string, substring string) Filter {
	return Filter{Column: column, Op: OpLike, Value: "%" + substring + "%"}
}

// In constrains a column to one of the listed values. The list must be
// non-empty; Build rejects an empty IN rather than guessing at a truth value.
func In(column string, values ...any) Filter {
	return Filter{Column: column, Op: OpIn, Value: values}
}

// Assignment is one column-to-value pair for insert and update. Order is
// preserved: columns render and parameters bind in the order given.
type Assignment struct {
	Column string
	Value  any
}

// Set pairs a column with the value to insert or update.
func Set(column string, value any) Assignment {
	return Assignment{Column: column, Value: value}
}

// Order is one ORDER BY term.
type Order struct {
	Column    string
	Direction string
}

// Asc orders ascending by a column.
func Asc(column string) Order { return Order{Column: column, Direction: "ASC"} }

// Desc orders descending by a column.
func Desc(column string) Order { return Order{Column: column, Direction: "DESC"} }

// ColumnDef declares one column for a create-table operation. Type is a SQL
// type expression such as "INTEGER PRIMARY KEY" or "VARCHAR(255)".
type ColumnDef struct {
	Name string
	Type string
}

// Column pairs a column name with its SQL type for create-table.
func Column(name, sqlType string) ColumnDef {
	return ColumnDef{Name: name, Type: sqlType}
}

// Descriptor is a caller's structured request before SQL translation.
// Which fields apply depends on Kind: Assignments for insert and update,
// Projection, OrderBy and Limit for select, Columns for create-table, and
// SQL with Params for raw. Descriptors are transient; build one per call.
type Descriptor struct {
	Kind        Kind
	Table       string
	Filters     []Filter
	Assignments []Assignment
	Projection  []string
	OrderBy     []Order
	Limit       int
	Columns     []ColumnDef
	SQL         string
	Params      []any
}

// Statement is SQL text plus its ordered bound parameters, ready for
// execution. The number of positional placeholders in Text always equals
// len(Params), bound in placeholder order.
type Statement struct {
	Text   string
	Params []any
}
