package token

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// cookieMedium is the short-lived token medium: a JSON file holding entries
// with absolute expiry timestamps, mirroring the browser cookies the original
// dashboard used. Expired entries are treated as absent on read and dropped
// on the next write.
type cookieMedium struct {
	path string

	mu      sync.RWMutex
	entries map[string]cookieEntry
}

type cookieEntry struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expires_at,omitempty"`
}

// NewCookieMedium opens (or creates on first write) the cookie file at path.
// An unreadable or corrupt file is an error; a missing file is not.
func NewCookieMedium(path string) (Medium, error) {
	m := &cookieMedium{path: path, entries: make(map[string]cookieEntry)}
	if err := m.load(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *cookieMedium) load() error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read cookie file: %w", err)
	}

	var entries map[string]cookieEntry
	if err = json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("decode cookie file: %w", err)
	}
	if entries != nil {
		m.entries = entries
	}

	return nil
}

func (m *cookieMedium) persist() error {
	now := time.Now()
	for key, e := range m.entries {
		if !e.ExpiresAt.IsZero() && e.ExpiresAt.Before(now) {
			delete(m.entries, key)
		}
	}

	dir := filepath.Dir(m.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create cookie dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(m.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cookie file: %w", err)
	}

	if err = os.WriteFile(m.path, payload, 0o600); err != nil {
		return fmt.Errorf("write cookie file: %w", err)
	}

	return nil
}

// Set implements [Medium].
func (m *cookieMedium) Set(key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry := cookieEntry{Value: value}
	if ttl > 0 {
		entry.ExpiresAt = time.Now().Add(ttl)
	}
	m.entries[key] = entry

	return m.persist()
}

// Get implements [Medium].
func (m *cookieMedium) Get(key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", ErrTokenNotFound
	}
	if !entry.ExpiresAt.IsZero() && entry.ExpiresAt.Before(time.Now()) {
		return "", ErrTokenNotFound
	}

	return entry.Value, nil
}

// Delete implements [Medium].
func (m *cookieMedium) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[key]; !ok {
		return nil
	}
	delete(m.entries, key)

	return m.persist()
}

// Close implements [Medium]. The cookie file needs no teardown.
func (m *cookieMedium) Close() error { return nil }
