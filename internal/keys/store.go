// Package keys resolves the API credential. Lookup order is environment,
// config file, then the system keyring, so a key stored once with
// `inkdraft config set-key` survives across shells without living in a
// dotfile.
package keys

import (
	"errors"

	"github.com/spf13/viper"
)

// APIKeyName is the credential identifier used in the keyring.
const APIKeyName = "genai.api_key"

var ErrKeyNotFound = errors.New("key not found")

// Store provides access to named credentials.
type Store interface {
	Get(name string) (string, error)
	Put(name string, value string) error
	Delete(name string) error
}

// ResolveAPIKey returns the API key from config (env and file are already
// merged by viper) or, failing that, the store. A missing key resolves to
// an empty string: the client still sends the request and the remote
// rejection surfaces as a normal generation failure.
func ResolveAPIKey(v *viper.Viper, s Store) string {
	if k := v.GetString(APIKeyName); k != "" {
		return k
	}
	if s == nil {
		return ""
	}
	k, err := s.Get(APIKeyName)
	if err != nil {
		return ""
	}
	return k
}
