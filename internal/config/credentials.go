package config

import "os"

// APIKeyResolver looks up the provider key in the process environment on
// every call, so a key added or rotated after startup is picked up and a
// missing key never prevents the server from starting.
type APIKeyResolver struct {
	names  []string
	lookup func(string) (string, bool)
}

// NewAPIKeyResolver returns a resolver reading the given variables in order.
func NewAPIKeyResolver(names []string) *APIKeyResolver {
	if len(names) == 0 {
		names = DefaultAPIKeyEnvs
	}
	return &APIKeyResolver{names: names, lookup: os.LookupEnv}
}

// Resolve returns the first non-empty value among the configured variables.
func (r *APIKeyResolver) Resolve() (string, bool) {
	for _, name := range r.names {
		if value, ok := r.lookup(name); ok && value != "" {
			return value, true
		}
	}
	return "", false
}
