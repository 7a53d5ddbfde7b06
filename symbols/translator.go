package symbols

import (
	"regexp"
	"strings"
)

// Translator resolves canonical symbols to broker-native form and back. The
// directory is consulted first; derivative contract names fall back to the
// algorithmic formatter when no entry exists.
type Translator struct {
	dir Directory
}

func NewTranslator(dir Directory) *Translator {
	return &Translator{dir: dir}
}

// Canonical derivative contract names: NAME + DDMMMYY + strike + CE/PE for
// options, NAME + DDMMMYY + FUT for futures. e.g. AARTIIND29MAY25630CE.
var derivativeRe = regexp.MustCompile(`^([A-Z][A-Z0-9&]*?)(\d{2}[A-Z]{3}\d{2})(?:(FUT)|(\d+(?:\.\d+)?)(CE|PE))$`)

// derivativeExchanges route through the F&O formatter when the directory has
// no entry.
var derivativeExchanges = map[string]bool{
	"NFO": true,
	"BFO": true,
	"CDS": true,
	"MCX": true,
}

// ToBroker resolves a canonical (symbol, exchange) pair to its broker-native
// mapping. Directory misses on derivative exchanges synthesize a transient
// mapping from the contract name; cash symbols pass through unchanged.
func (t *Translator) ToBroker(symbol, exchange string) (Mapping, error) {
	if m, err := t.dir.ByCanonical(symbol, exchange); err == nil {
		return m, nil
	}

	if derivativeExchanges[exchange] {
		brsym, ok := formatDerivative(symbol)
		if !ok {
			return Mapping{}, &NotFoundError{Symbol: symbol, Exchange: exchange}
		}
		return Mapping{
			Symbol:         symbol,
			Exchange:       exchange,
			BrokerSymbol:   brsym,
			BrokerExchange: exchange,
		}, nil
	}

	// Cash symbols share the canonical spelling.
	return Mapping{
		Symbol:         symbol,
		Exchange:       exchange,
		BrokerSymbol:   symbol,
		BrokerExchange: exchange,
	}, nil
}

// ToCanonical resolves a broker-native symbol back to canonical form.
// Resolution order: token lookup, broker-pair lookup, algorithmic collapse of
// spaced derivative names, identity for plain symbols. A derivative name that
// resolves nowhere is a NotFoundError; display callers degrade to the raw
// broker symbol rather than dropping the order.
func (t *Translator) ToCanonical(brokerSymbol, exchange, token string) (string, error) {
	if token != "" {
		if m, err := t.dir.ByToken(token, exchange); err == nil {
			return m.Symbol, nil
		}
	}

	if m, err := t.dir.ByBroker(brokerSymbol, exchange); err == nil {
		return m.Symbol, nil
	}

	if isDerivativeSymbol(brokerSymbol) {
		if sym, ok := collapseDerivative(brokerSymbol); ok {
			return sym, nil
		}
		return "", &NotFoundError{Symbol: brokerSymbol, Exchange: exchange}
	}

	return brokerSymbol, nil
}

// formatDerivative renders a canonical contract name in the broker's spaced
// form: AARTIIND29MAY25630CE -> "AARTIIND 29MAY25 630 CE".
func formatDerivative(symbol string) (string, bool) {
	m := derivativeRe.FindStringSubmatch(symbol)
	if m == nil {
		return "", false
	}
	name, expiry, fut, strike, opt := m[1], m[2], m[3], m[4], m[5]
	if fut != "" {
		return name + " " + expiry + " FUT", true
	}
	return name + " " + expiry + " " + strike + " " + opt, true
}

// collapseDerivative is the inverse of formatDerivative: it joins the spaced
// broker rendering back into the canonical contract name, provided the result
// parses as one.
func collapseDerivative(brokerSymbol string) (string, bool) {
	sym := strings.Join(strings.Fields(brokerSymbol), "")
	if !derivativeRe.MatchString(sym) {
		return "", false
	}
	return sym, true
}

// isDerivativeSymbol reports whether a broker symbol carries derivative
// contract markers: the spaced contract rendering or a CE/PE/FUT suffix
// following an expiry-like token.
func isDerivativeSymbol(brokerSymbol string) bool {
	if strings.Contains(brokerSymbol, " ") {
		return true
	}
	return derivativeRe.MatchString(brokerSymbol)
}
