package database

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/alimgiray/personapi/pkg/config"
	"github.com/alimgiray/personapi/pkg/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mattn/go-sqlite3"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// sqliteDriverName is go-sqlite3 with the extra SQL functions the repositories rely on
const sqliteDriverName = "sqlite3_personapi"

// UnicodeLowerFunc lowercases every Unicode letter; SQLite's built-in LOWER only folds ASCII
const UnicodeLowerFunc = "unicode_lower"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc(UnicodeLowerFunc, strings.ToLower, true)
		},
	})
}

//go:embed migrations/*.sql
var migrations embed.FS

var DB *sql.DB

// Init opens the configured database, stores it in DB and runs the migrations
func Init(cfg config.DatabaseConfig) error {
	db, err := Open(cfg)
	if err != nil {
		return err
	}

	if err := RunSQLScripts(db); err != nil {
		db.Close()
		return err
	}

	DB = db
	return nil
}

// Open opens and pings a database connection for the given driver
func Open(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := dataSourceName(cfg)
	if err != nil {
		return nil, err
	}

	driverName := cfg.Driver
	if driverName == DriverSQLite {
		driverName = sqliteDriverName
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, err
	}

	// Configure connection pool
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxOpen / 2)
	db.SetConnMaxLifetime(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s database: %w", cfg.Driver, err)
	}

	if cfg.Driver == DriverSQLite {
		if err := optimizeSQLite(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	logger.WithField("driver", cfg.Driver).Info("Database connected successfully")
	return db, nil
}

// dataSourceName appends the SQLite tuning parameters to a plain file path
func dataSourceName(cfg config.DatabaseConfig) (string, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return cfg.URL + "?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON&_busy_timeout=30000", nil
	case DriverPostgres:
		return cfg.URL, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// optimizeSQLite configures SQLite for concurrent request handling
func optimizeSQLite(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA cache_size=10000",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA busy_timeout=30000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}

// RunSQLScripts executes the embedded migration scripts in file name order
func RunSQLScripts(db *sql.DB) error {
	files, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, file := range files {
		sqlContent, err := migrations.ReadFile(file)
		if err != nil {
			return err
		}

		if _, err := db.Exec(string(sqlContent)); err != nil {
			return fmt.Errorf("execute %s: %w", path.Base(file), err)
		}

		logger.Debugf("Executed SQL script: %s", path.Base(file))
	}

	logger.Info("All SQL scripts executed successfully")
	return nil
}
