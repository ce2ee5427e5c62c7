package codec

import "sync"

// Registry manages the available codecs, keyed by both name and comp-type
// byte so callers can look a codec up from either a CLI flag or a decoded
// container byte.
type Registry struct {
	mu        sync.RWMutex
	byName    map[string]Codec
	byCompVal map[byte]Codec
}

var defaultRegistry = &Registry{
	byName:    make(map[string]Codec),
	byCompVal: make(map[byte]Codec),
}

// Register registers a codec in the default registry.
func Register(c Codec) {
	defaultRegistry.Register(c)
}

// Get retrieves a codec by name from the default registry.
func Get(name string) (Codec, error) {
	return defaultRegistry.Get(name)
}

// GetByCompType retrieves a codec by its on-wire comp-type byte from the
// default registry.
func GetByCompType(compType byte) (Codec, error) {
	return defaultRegistry.GetByCompType(compType)
}

// List returns all registered codecs.
func List() []Codec {
	return defaultRegistry.List()
}

// Register registers a codec under both its name and comp-type byte.
func (r *Registry) Register(c Codec) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[c.Name()] = c
	r.byCompVal[c.CompType()] = c
}

// Get retrieves a codec by name.
func (r *Registry) Get(name string) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byName[name]
	if !ok {
		return nil, ErrCodecNotFound
	}
	return c, nil
}

// GetByCompType retrieves a codec by its on-wire comp-type byte.
func (r *Registry) GetByCompType(compType byte) (Codec, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byCompVal[compType]
	if !ok {
		return nil, ErrInvalidCompType
	}
	return c, nil
}

// List returns all registered codecs.
func (r *Registry) List() []Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	codecs := make([]Codec, 0, len(r.byName))
	for _, c := range r.byName {
		codecs = append(codecs, c)
	}
	return codecs
}
