package symbols

import (
	"database/sql"
	"errors"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS symbols (
	symbol TEXT NOT NULL,
	exchange TEXT NOT NULL,
	brsymbol TEXT NOT NULL,
	brexchange TEXT NOT NULL,
	token TEXT NOT NULL,
	PRIMARY KEY (symbol, exchange)
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_symbols_broker ON symbols(brsymbol, brexchange);
CREATE INDEX IF NOT EXISTS idx_symbols_token ON symbols(token);
`

// SQLiteDirectory reads a symbol master persisted in SQLite. The table is
// populated and refreshed by an external process; this side never writes rows.
type SQLiteDirectory struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteDirectory, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteDirectory{db: db}, nil
}

const selectCols = `SELECT symbol, exchange, brsymbol, brexchange, token FROM symbols `

func (d *SQLiteDirectory) ByCanonical(symbol, exchange string) (Mapping, error) {
	row := d.db.QueryRow(selectCols+`WHERE symbol = ? AND exchange = ?`, symbol, exchange)
	return scanMapping(row, symbol, exchange)
}

func (d *SQLiteDirectory) ByBroker(brokerSymbol, exchange string) (Mapping, error) {
	row := d.db.QueryRow(selectCols+`WHERE brsymbol = ? AND brexchange = ?`, brokerSymbol, exchange)
	return scanMapping(row, brokerSymbol, exchange)
}

func (d *SQLiteDirectory) ByToken(token, exchange string) (Mapping, error) {
	row := d.db.QueryRow(selectCols+`WHERE token = ? AND exchange = ?`, token, exchange)
	return scanMapping(row, token, exchange)
}

func scanMapping(row *sql.Row, symbol, exchange string) (Mapping, error) {
	var m Mapping
	err := row.Scan(&m.Symbol, &m.Exchange, &m.BrokerSymbol, &m.BrokerExchange, &m.Token)
	if errors.Is(err, sql.ErrNoRows) {
		return Mapping{}, &NotFoundError{Symbol: symbol, Exchange: exchange}
	}
	if err != nil {
		return Mapping{}, err
	}
	return m, nil
}

func (d *SQLiteDirectory) Close() error {
	return d.db.Close()
}
