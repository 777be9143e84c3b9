package storage

import (
	"fmt"

	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/db"
)

const DEFAULT_SQLITE_PATH = "explorer-metadata.db"

func NewSqliteConnector(cfg *config.SqliteConfig) (*SQLConnector, error) {
	path := cfg.Path
	if path == "" {
		path = DEFAULT_SQLITE_PATH
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	return newSQLConnector(db.DialectSqlite, dsn)
}
