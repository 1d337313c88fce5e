package storage

import (
	"database/sql"

	"github.com/goserg/trucoserver/internal/migrate"

	_ "github.com/mattn/go-sqlite3"
)

// Open connects to the sqlite file and brings its schema up to date.
func Open(fileName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", buildSource(fileName))
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return nil, err
	}
	err = migrate.Up(db)
	if err != nil {
		return nil, err
	}
	return db, nil
}

func buildSource(fileName string) string {
	return "file:" + fileName + "?cache=shared&_foreign_keys=on"
}
