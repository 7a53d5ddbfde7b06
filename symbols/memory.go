package symbols

// MemoryDirectory is an in-memory Directory, handy for tests and for
// embedding a small fixed symbol set. The maps are built once and read-only
// afterwards, so concurrent lookups need no locking.
type MemoryDirectory struct {
	byCanonical map[[2]string]Mapping
	byBroker    map[[2]string]Mapping
	byToken     map[[2]string]Mapping
}

func NewMemory(mappings ...Mapping) *MemoryDirectory {
	d := &MemoryDirectory{
		byCanonical: make(map[[2]string]Mapping, len(mappings)),
		byBroker:    make(map[[2]string]Mapping, len(mappings)),
		byToken:     make(map[[2]string]Mapping, len(mappings)),
	}
	for _, m := range mappings {
		d.byCanonical[[2]string{m.Symbol, m.Exchange}] = m
		d.byBroker[[2]string{m.BrokerSymbol, m.BrokerExchange}] = m
		if m.Token != "" {
			d.byToken[[2]string{m.Token, m.Exchange}] = m
		}
	}
	return d
}

func (d *MemoryDirectory) ByCanonical(symbol, exchange string) (Mapping, error) {
	if m, ok := d.byCanonical[[2]string{symbol, exchange}]; ok {
		return m, nil
	}
	return Mapping{}, &NotFoundError{Symbol: symbol, Exchange: exchange}
}

func (d *MemoryDirectory) ByBroker(brokerSymbol, exchange string) (Mapping, error) {
	if m, ok := d.byBroker[[2]string{brokerSymbol, exchange}]; ok {
		return m, nil
	}
	return Mapping{}, &NotFoundError{Symbol: brokerSymbol, Exchange: exchange}
}

func (d *MemoryDirectory) ByToken(token, exchange string) (Mapping, error) {
	if m, ok := d.byToken[[2]string{token, exchange}]; ok {
		return m, nil
	}
	return Mapping{}, &NotFoundError{Symbol: token, Exchange: exchange}
}
