package broker

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/rustyeddy/brokerhub/symbols"
)

// Factory builds an adapter against a broker endpoint. A nil client means
// http.DefaultClient; the translator supplies symbol resolution.
type Factory func(baseURL string, client *http.Client, tr *symbols.Translator) Adapter

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register makes a broker adapter available under name. It is called from the
// adapter package's init, driver-style; registering the same name twice
// panics.
func Register(name string, f Factory) {
	mu.Lock()
	defer mu.Unlock()
	if _, dup := factories[name]; dup {
		panic("broker: Register called twice for " + name)
	}
	factories[name] = f
}

// New builds the adapter registered under name.
func New(name, baseURL string, client *http.Client, tr *symbols.Translator) (Adapter, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown broker %q (registered: %v)", name, Registered())
	}
	return f(baseURL, client, tr), nil
}

// Registered lists the registered broker names, sorted.
func Registered() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
