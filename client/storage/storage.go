// Package storage provides the persisted key-value store backing the client
// state containers. It mirrors browser local storage semantics: reads fall
// back instead of failing, and write errors are logged rather than surfaced so
// an in-memory mutation never fails because the disk did.
package storage

import (
	"encoding/json"
	"log"
	"os"
	"sync"
)

// Persisted keys shared between the client stores.
const (
	CartKey     = "shoppingCart"
	TokenKey    = "authToken"
	UserKey     = "user"
	WishlistKey = "wishlist"
)

// Store is the persistence contract used by the client stores. No method
// returns an error: Get reports whether dest was populated, Set and Remove
// swallow and log failures.
type Store interface {
	Get(key string, dest any) bool
	Set(key string, value any)
	Remove(key string)
	Clear()
}

// GetOr reads key into a value of type T, returning fallback when the key is
// absent or its stored value cannot be decoded.
func GetOr[T any](s Store, key string, fallback T) T {
	var v T
	if s.Get(key, &v) {
		return v
	}
	return fallback
}

// FileStore keeps all entries in a single JSON file, rewritten on every
// mutation. Carts and sessions are small, so whole-file writes keep the
// on-disk state consistent without partial-write handling.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]json.RawMessage
}

// NewFileStore opens the store at path. A missing or unreadable file starts
// the store empty; it is not an error.
func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path:    path,
		entries: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("storage: failed to read state file, starting empty:", err)
		}
		return s
	}

	if err := json.Unmarshal(data, &s.entries); err != nil {
		log.Println("storage: corrupt state file, starting empty:", err)
		s.entries = make(map[string]json.RawMessage)
	}
	return s
}

func (s *FileStore) Get(key string, dest any) bool {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()

	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		log.Println("storage: failed to decode value for key", key, ":", err)
		return false
	}
	return true
}

func (s *FileStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Println("storage: failed to encode value for key", key, ":", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = raw
	s.flush()
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; !ok {
		return
	}
	delete(s.entries, key)
	s.flush()
}

func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]json.RawMessage)
	s.flush()
}

// flush writes the whole entry map to disk. Callers hold the lock.
func (s *FileStore) flush() {
	data, err := json.Marshal(s.entries)
	if err != nil {
		log.Println("storage: failed to encode state file:", err)
		return
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		log.Println("storage: failed to write state file:", err)
	}
}

// MemoryStore is a Store without persistence, for tests and ephemeral runs.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(key string, dest any) bool {
	s.mu.Lock()
	raw, ok := s.entries[key]
	s.mu.Unlock()

	if !ok {
		return false
	}
	return json.Unmarshal(raw, dest) == nil
}

func (s *MemoryStore) Set(key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Println("storage: failed to encode value for key", key, ":", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = raw
}

func (s *MemoryStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]json.RawMessage)
}
