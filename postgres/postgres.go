package postgres

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"

	pgx "github.com/jackc/pgx/v5"

	directdb "github.com/directdb-project/directdb"
	"github.com/directdb-project/directdb/conn"
	"github.com/directdb-project/directdb/dialect"
	"github.com/directdb-project/directdb/engine"
	"github.com/directdb-project/directdb/query"
)

// Client defines the PostgreSQL facade surface.
type Client interface {
	// Connect establishes the database session.
	Connect(ctx context.Context) error

	// Close tears the session down, failing queued operations.
	Close(ctx context.Context) error

	// Select fetches rows from a table.
	Select(ctx context.Context, table string, opts engine.SelectOpts) (directdb.Result, error)

	// Insert adds one row built from the given assignments.
	Insert(ctx context.Context, table string, assignments ...query.Assignment) (directdb.Result, error)

	// Update modifies the rows matched by the filters.
	Update(ctx context.Context, table string, assignments []query.Assignment, opts engine.UpdateOpts) (directdb.Result, error)

	// Delete removes the rows matched by the filters.
	Delete(ctx context.Context, table string, opts engine.DeleteOpts) (directdb.Result, error)

	// Raw executes caller-supplied SQL with its parameters unchanged.
	Raw(ctx context.Context, sql string, params ...any) (directdb.Result, error)

	// Run executes a hand-built operation descriptor.
	Run(ctx context.Context, d query.Descriptor) (directdb.Result, error)

	// CreateTable creates a table if it does not exist.
	CreateTable(ctx context.Context, table string, columns ...query.ColumnDef) error

	// DropTable drops a table if it exists.
	DropTable(ctx context.Context, table string) error
}

// Config describes the PostgreSQL connection.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string

	// Driver overrides the pgx-backed session, used in tests. When set, the
	// connection fields are ignored and not validated.
	Driver conn.Driver
}

// DB is the PostgreSQL facade implementation.
type DB struct {
	*engine.Engine
	mgr *conn.Manager
}

var _ Client = (*DB)(nil)

// New validates the configuration and creates an unconnected facade.
func New(config Config) (*DB, error) {
	driver := config.Driver
	if driver == nil {
		if err := config.validate(); err != nil {
			return nil, err
		}
		driver = &pgxDriver{cfg: config}
	}

	mgr := conn.NewManager(driver)
	return &DB{Engine: engine.New(mgr, dialect.Postgres()), mgr: mgr}, nil
}

// Connect establishes the database session.
func (db *DB) Connect(ctx context.Context) error { return db.mgr.Connect(ctx) }

// Close tears the session down, failing queued operations.
func (db *DB) Close(ctx context.Context) error { return db.mgr.Close(ctx) }

func (c Config) validate() error {
	fields := []struct {
		name  string
		value string
	}{
		{"host", c.Host},
		{"user", c.User},
		{"password", c.Password},
		{"database", c.Database},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", directdb.ErrValidation, f.name)
		}
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d outside [1, 65535]", directdb.ErrValidation, c.Port)
	}
	return nil
}

func (c Config) connString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:   "/" + c.Database,
	}
	return u.String()
}

// pgxDriver is the conn.Driver over a single *pgx.Conn. A pgx connection is
// not safe for concurrent use, which is exactly the contract the Manager's
// serialization provides.
type pgxDriver struct {
	cfg  Config
	conn *pgx.Conn
}

var _ conn.Driver = (*pgxDriver)(nil)

func (d *pgxDriver) Open(ctx context.Context) error {
	c, err := pgx.Connect(ctx, d.cfg.connString())
	if err != nil {
		return err
	}
	d.conn = c
	return nil
}

func (d *pgxDriver) Query(ctx context.Context, text string, params []any) (*conn.Result, error) {
	rows, err := d.conn.Query(ctx, text, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	res := &conn.Result{
		Columns: make([]string, len(fields)),
		Types:   make([]string, len(fields)),
	}
	for i, fd := range fields {
		res.Columns[i] = fd.Name
		if dt, ok := d.conn.TypeMap().TypeForOID(fd.DataTypeOID); ok {
			res.Types[i] = strings.ToUpper(dt.Name)
		}
	}
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		res.Rows = append(res.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *pgxDriver) Exec(ctx context.Context, text string, params []any) (int64, error) {
	tag, err := d.conn.Exec(ctx, text, params...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (d *pgxDriver) Close(ctx context.Context) error {
	if d.conn == nil {
		return nil
	}
	return d.conn.Close(ctx)
}
