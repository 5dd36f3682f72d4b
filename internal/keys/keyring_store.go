package keys

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const DefaultKeyringService = "inkdraft"

// KeyringStore keeps credentials in the system keyring.
type KeyringStore struct {
	Service string
}

func (s *KeyringStore) Get(name string) (string, error) {
	val, err := keyring.Get(s.service(), name)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrKeyNotFound
		}
		return "", err
	}
	return val, nil
}

func (s *KeyringStore) Put(name, value string) error {
	return keyring.Set(s.service(), name, value)
}

func (s *KeyringStore) Delete(name string) error {
	err := keyring.Delete(s.service(), name)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

func (s *KeyringStore) service() string {
	if s != nil && s.Service != "" {
		return s.Service
	}
	return DefaultKeyringService
}

// Available reports whether a system keyring backend appears supported.
func Available() bool {
	_, err := keyring.Get(DefaultKeyringService, "_probe_")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
