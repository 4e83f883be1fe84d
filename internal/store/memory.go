package store

// MemoryBackend is an in-memory Backend used in tests and anywhere a
// throwaway namespace is useful.
type MemoryBackend struct {
	data map[string][]byte
	err  error
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *MemoryBackend {
	return &MemoryBackend{data: make(map[string][]byte)}
}

// FailWrites makes every subsequent Set return err. Used to exercise
// the store's degrade-to-no-op path.
func (m *MemoryBackend) FailWrites(err error) {
	m.err = err
}

// Get returns the bytes stored under key.
func (m *MemoryBackend) Get(key string) ([]byte, bool) {
	raw, ok := m.data[key]
	return raw, ok
}

// Set overwrites the value stored under key.
func (m *MemoryBackend) Set(key string, value []byte) error {
	if m.err != nil {
		return m.err
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}
