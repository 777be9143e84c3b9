package storage

import (
	"fmt"
	"time"

	config "github.com/localscan/explorer/configs"
	"github.com/localscan/explorer/db"
	"github.com/rs/zerolog/log"
)

func NewPostgresConnector(cfg *config.PostgresConfig) (*SQLConnector, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s",
		cfg.Host, cfg.Port, cfg.Username, cfg.Password, cfg.Database)

	// Local dev databases rarely have TLS, so default to "disable"
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
		log.Info().Msg("No SSL mode specified, defaulting to 'disable'")
	}
	connStr += fmt.Sprintf(" sslmode=%s", sslMode)

	if cfg.ConnectTimeout > 0 {
		connStr += fmt.Sprintf(" connect_timeout=%d", cfg.ConnectTimeout)
	}

	conn, err := newSQLConnector(db.DialectPostgres, connStr)
	if err != nil {
		return nil, err
	}

	if cfg.MaxOpenConns > 0 {
		conn.db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		conn.db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxConnLifetime > 0 {
		conn.db.SetConnMaxLifetime(time.Duration(cfg.MaxConnLifetime) * time.Second)
	}

	if err := conn.db.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return conn, nil
}
