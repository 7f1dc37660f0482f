package dispatch

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ArgumentFactory converts one raw token into a typed value. Factories must
// be pure; a refused token is reported as *BadArgumentTypeError.
type ArgumentFactory func(token string) (any, error)

// FactoryRegistry maps type names to argument factories. Registration is
// expected during setup, lookups during dispatch; the lock makes late
// registration safe anyway.
type FactoryRegistry struct {
	mu        sync.RWMutex
	factories map[string]ArgumentFactory
}

// NewFactoryRegistry returns a registry pre-loaded with the built-in
// factories (string, number, float, bool, duration, user) and the
// int/integer aliases of number.
func NewFactoryRegistry() *FactoryRegistry {
	r := &FactoryRegistry{factories: make(map[string]ArgumentFactory)}

	r.Register("string", func(token string) (any, error) {
		return token, nil
	})

	r.Register("number", func(token string) (any, error) {
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, &BadArgumentTypeError{Value: token, Type: "number"}
		}
		return n, nil
	})

	r.Register("float", func(token string) (any, error) {
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return nil, &BadArgumentTypeError{Value: token, Type: "float"}
		}
		return f, nil
	})

	r.Register("bool", func(token string) (any, error) {
		b, err := strconv.ParseBool(token)
		if err != nil {
			return nil, &BadArgumentTypeError{Value: token, Type: "bool"}
		}
		return b, nil
	})

	r.Register("duration", func(token string) (any, error) {
		d, err := time.ParseDuration(token)
		if err != nil {
			return nil, &BadArgumentTypeError{Value: token, Type: "duration"}
		}
		return d, nil
	})

	// user strips mention markup (<@123>, <@!123>, @name) and yields the
	// bare ID or name. Resolving it to a live account is the adapter's
	// business.
	r.Register("user", func(token string) (any, error) {
		ref := token
		if strings.HasPrefix(ref, "<@") && strings.HasSuffix(ref, ">") {
			ref = strings.TrimSuffix(strings.TrimPrefix(ref, "<@"), ">")
			ref = strings.TrimPrefix(ref, "!")
		} else {
			ref = strings.TrimPrefix(ref, "@")
		}
		if ref == "" {
			return nil, &BadArgumentTypeError{Value: token, Type: "user"}
		}
		return ref, nil
	})

	// Aliases
	r.Alias("int", "number")
	r.Alias("integer", "number")

	return r
}

// Register adds or replaces a factory under a type name.
func (r *FactoryRegistry) Register(name string, f ArgumentFactory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

// Alias registers an existing factory under an additional name.
func (r *FactoryRegistry) Alias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.factories[name]; ok {
		r.factories[alias] = f
	}
}

// Get returns the factory registered under a type name.
func (r *FactoryRegistry) Get(name string) (ArgumentFactory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("no argument factory registered for type '%s'", name)
	}
	return f, nil
}
