// Package entity holds the metadata-and-state value shared by network
// entities (switches, interfaces, links). Entities embed these values
// instead of inheriting from a common base type; consumers that only
// care about metadata accept the Carrier capability interface.
package entity

// Metadata is a free-form attribute bag attached to an entity.
type Metadata map[string]interface{}

// Carrier is implemented by entities that expose their metadata.
type Carrier interface {
	Metadata() Metadata
	UpdateMetadata(key string, value interface{})
	DeleteMetadata(key string)
}

// NewMetadata creates an empty metadata bag.
func NewMetadata() Metadata {
	return make(Metadata)
}

// Get returns the value for key and whether it is present.
func (m Metadata) Get(key string) (interface{}, bool) {
	v, ok := m[key]
	return v, ok
}

// Set stores a value under key.
func (m Metadata) Set(key string, value interface{}) {
	m[key] = value
}

// Delete removes key. Deleting an absent key is a no-op.
func (m Metadata) Delete(key string) {
	delete(m, key)
}

// Merge copies all entries from other, overwriting existing keys.
func (m Metadata) Merge(other Metadata) {
	for k, v := range other {
		m[k] = v
	}
}

// Record returns a plain map copy for external representations.
// The copy is never nil, so it renders as {} rather than null.
func (m Metadata) Record() map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Status tracks the administrative and operational flags of an entity.
// Enabled is set by the operator; Active reflects what the network
// reports.
type Status struct {
	Enabled bool `json:"enabled"`
	Active  bool `json:"active"`
}

// IsUp reports whether the entity is both enabled and active.
func (s Status) IsUp() bool {
	return s.Enabled && s.Active
}
