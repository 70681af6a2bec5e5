// Package secrets stores cloud credential references for the scaffolder.
// It uses the OS keychain (macOS Keychain, Linux Secret Service) when
// available, with a file-based fallback for environments without a
// keychain (CI, containers).
package secrets

import "fmt"

// serviceName is the keychain service identifier for all terrastrap secrets.
const serviceName = "terrastrap"

// Store provides secure credential storage.
type Store interface {
	// Get retrieves a secret by key. Returns ErrNotFound if not present.
	Get(key string) (string, error)
	// Set stores a secret under the given key, replacing any existing value.
	Set(key, value string) error
	// Delete removes a secret. No error if the key doesn't exist.
	Delete(key string) error
}

// ErrNotFound is returned when a secret key does not exist.
var ErrNotFound = fmt.Errorf("secret not found")

// Key builds a canonical key for provider secrets.
// Format: "provider/field" (e.g. "aws/profile").
func Key(provider, field string) string {
	return provider + "/" + field
}

// New returns the best available Store for the current environment.
// It tries the OS keychain first, falling back to a file-based store.
func New(dir string) Store {
	ks := newKeychainStore()
	// Probe: try a set+delete cycle to verify keychain availability.
	probeKey := "__terrastrap_probe__"
	if err := ks.Set(probeKey, "ok"); err != nil {
		return newFileStore(dir)
	}
	_ = ks.Delete(probeKey)
	return ks
}
