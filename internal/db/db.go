package db

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vibe-gaming/hbnb/internal/config"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const DuplicateEntry = 1062

// New connects to the configured driver and pings it.
func New(cfg config.Database) (*sqlx.DB, error) {
	switch cfg.Driver {
	case config.DriverMySQL:
		return newMySQL(cfg)
	case config.DriverSQLite:
		return newSQLite(cfg)
	}
	return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
}

// MySQLConfig builds the driver configuration shared by the connection
// pool and the migrator.
func MySQLConfig(cfg config.Database) (*mysql.Config, error) {
	location, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("time load location failed: %w", err)
	}
	conf := mysql.NewConfig()
	conf.Net = cfg.Net
	conf.Addr = cfg.Server
	conf.User = cfg.User
	conf.Passwd = cfg.Password
	conf.DBName = cfg.DBName
	conf.Timeout = cfg.Timeout
	conf.Loc = location
	conf.ParseTime = true
	// optimistic updates count matched rows, not changed ones
	conf.ClientFoundRows = true
	conf.MultiStatements = true
	return conf, nil
}

func newMySQL(cfg config.Database) (*sqlx.DB, error) {
	conf, err := MySQLConfig(cfg)
	if err != nil {
		return nil, err
	}

	dbConn, err := sqlx.Connect("mysql", conf.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConnections)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConnections)

	if err := dbConn.Ping(); err != nil {
		return nil, err
	}

	return dbConn, nil
}

func newSQLite(cfg config.Database) (*sqlx.DB, error) {
	if cfg.SQLitePath == "" {
		return nil, errors.New("sqlite path is required")
	}

	const params = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite"
	dsn := cfg.SQLitePath + "?" + params
	if strings.Contains(cfg.SQLitePath, "?") {
		dsn = cfg.SQLitePath + "&" + params
	}

	dbConn, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	// every connection to :memory: is a different database, and sqlite
	// serialises writers anyway
	dbConn.SetMaxOpenConns(1)
	dbConn.SetMaxIdleConns(1)
	dbConn.SetConnMaxLifetime(0)

	if err := dbConn.Ping(); err != nil {
		return nil, err
	}

	return dbConn, nil
}

// IsDuplicateEntry reports whether err is a primary or unique key
// violation of either driver.
func IsDuplicateEntry(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == DuplicateEntry
	}
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY || code == sqlite3.SQLITE_CONSTRAINT_UNIQUE
	}
	return false
}
