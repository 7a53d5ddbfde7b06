// Package symbols maps between canonical (symbol, exchange) pairs and
// broker-native (trading symbol, broker exchange, token) triples.
//
// The persisted symbol master is owned by an external collaborator; this
// package only reads it. When no directory entry exists the Translator falls
// back to an algorithmic formatter for derivative contract names.
package symbols

import "fmt"

// Mapping is one row of a broker's symbol directory. Both the canonical pair
// and the broker pair are unique within a directory.
type Mapping struct {
	Symbol         string // canonical symbol
	Exchange       string // canonical exchange
	BrokerSymbol   string
	BrokerExchange string
	Token          string
}

// Directory is the read-side of a broker's symbol master. All lookups return
// ErrNotFound-compatible errors when no entry exists.
type Directory interface {
	// ByCanonical looks up the mapping for a canonical (symbol, exchange) pair.
	ByCanonical(symbol, exchange string) (Mapping, error)
	// ByBroker looks up the mapping for a broker (symbol, exchange) pair.
	ByBroker(brokerSymbol, exchange string) (Mapping, error)
	// ByToken looks up the mapping for a broker token. Token lookups are
	// stable across broker symbol renames and are preferred when available.
	ByToken(token, exchange string) (Mapping, error)
}

// NotFoundError reports a symbol with no directory entry and no algorithmic
// fallback. Fatal during placement; display paths degrade to the raw symbol.
type NotFoundError struct {
	Symbol   string
	Exchange string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("symbol not found: %s on %s", e.Symbol, e.Exchange)
}
