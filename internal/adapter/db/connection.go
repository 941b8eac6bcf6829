package db

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"todolist/internal/config"
)

const poolSize = 10

// ConnectDB builds the shared connection pool without pinging it. An
// unreachable database must not keep the process from starting; each
// request fails on its own until the store comes back.
func ConnectDB(conf *config.Config) (*sqlx.DB, error) {
	database, err := sqlx.Open("mysql", dsn(conf, conf.DbName))
	if err != nil {
		return nil, err
	}

	database.SetMaxOpenConns(poolSize)
	database.SetMaxIdleConns(poolSize)

	return database, nil
}

func dsn(conf *config.Config, dbName string) string {
	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&multiStatements=true"
	}

	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		dbName,
		params,
	)
}
