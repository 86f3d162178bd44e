package port

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/flowgate-net/flowgate/pkg/entity"
	"github.com/flowgate-net/flowgate/pkg/openflow"
	"github.com/flowgate-net/flowgate/pkg/util"
)

// Interface models one port of a switch: identity, advertised
// capabilities, the tag pool for circuits crossing it, and the
// endpoints learned behind it.
//
// An Interface holds a non-owning reference to its Switch; it is
// created when the switch reports a port and updated whenever the
// switch resends port state or features. See the package comment for
// the single-writer concurrency rule.
type Interface struct {
	name       string
	portNumber int
	sw         Switch

	address     string
	state       openflow.PortState
	features    openflow.PortFeatures
	customSpeed *float64
	nni         bool

	endpoints []EndpointEntry
	stats     Stats
	pool      *TagPool

	meta   entity.Metadata
	status entity.Status

	log *logrus.Logger
}

// EndpointEntry pairs an endpoint reference with the time it was last
// confirmed on this interface.
type EndpointEntry struct {
	Endpoint string
	LastSeen time.Time
}

// NewInterface creates an Interface bound to a switch with a full tag
// pool. The port number must be non-negative; sw must not be nil.
func NewInterface(name string, portNumber int, sw Switch) *Interface {
	return &Interface{
		name:       name,
		portNumber: portNumber,
		sw:         sw,
		pool:       NewTagPool(),
		meta:       entity.NewMetadata(),
		log:        util.Logger,
	}
}

// ID returns the external identifier, "<switch-id>:<port-number>".
func (i *Interface) ID() string {
	return fmt.Sprintf("%s:%d", i.sw.ID(), i.portNumber)
}

// Name returns the interface name, e.g. "eth0".
func (i *Interface) Name() string {
	return i.name
}

// PortNumber returns the port number on the owning switch.
func (i *Interface) PortNumber() int {
	return i.portNumber
}

// Switch returns the owning switch reference.
func (i *Interface) Switch() Switch {
	return i.sw
}

// Address returns the hardware address, or "" when unknown.
func (i *Interface) Address() string {
	return i.address
}

// SetAddress sets the hardware address.
func (i *Interface) SetAddress(addr string) {
	i.address = addr
}

// State returns the last reported port state.
func (i *Interface) State() openflow.PortState {
	return i.state
}

// SetState records the port state reported by the switch.
func (i *Interface) SetState(state openflow.PortState) {
	i.state = state
}

// Features returns the advertised capability bitmask.
func (i *Interface) Features() openflow.PortFeatures {
	return i.features
}

// SetFeatures records the capability bitmask reported by the switch.
func (i *Interface) SetFeatures(features openflow.PortFeatures) {
	i.features = features
}

// IsNNI reports whether this port is a trunk to another network element.
func (i *Interface) IsNNI() bool {
	return i.nni
}

// IsUNI reports whether this port faces a user.
func (i *Interface) IsUNI() bool {
	return !i.nni
}

// SetNNI marks the port as a network-to-network interface.
func (i *Interface) SetNNI(nni bool) {
	i.nni = nni
}

// Stats returns the statistics collaborator, or nil.
func (i *Interface) Stats() Stats {
	return i.stats
}

// SetStats attaches an externally owned statistics collaborator.
func (i *Interface) SetStats(stats Stats) {
	i.stats = stats
}

// SetLogger replaces the diagnostics sink. The global util.Logger is
// used by default.
func (i *Interface) SetLogger(log *logrus.Logger) {
	i.log = log
}

// Status returns the administrative and operational flags.
func (i *Interface) Status() entity.Status {
	return i.status
}

// SetEnabled sets the administrative flag.
func (i *Interface) SetEnabled(enabled bool) {
	i.status.Enabled = enabled
}

// SetActive sets the operational flag.
func (i *Interface) SetActive(active bool) {
	i.status.Active = active
}

// ============================================================================
// Metadata (entity.Carrier)
// ============================================================================

// Metadata returns the interface's metadata bag.
func (i *Interface) Metadata() entity.Metadata {
	return i.meta
}

// UpdateMetadata stores a metadata value.
func (i *Interface) UpdateMetadata(key string, value interface{}) {
	i.meta.Set(key, value)
}

// DeleteMetadata removes a metadata key.
func (i *Interface) DeleteMetadata(key string) {
	i.meta.Delete(key)
}

// ============================================================================
// Tag pool
// ============================================================================

// Pool returns the tag pool owned by this interface.
func (i *Interface) Pool() *TagPool {
	return i.pool
}

// SetPool replaces the tag pool, e.g. with one seeded from a configured
// range. The previous pool is discarded.
func (i *Interface) SetPool(pool *TagPool) {
	i.pool = pool
}

// ReserveTag removes a specific tag from the pool. It returns false
// when the tag is not available.
func (i *Interface) ReserveTag(tag Tag) bool {
	return i.pool.Reserve(tag)
}

// TagAvailable reports whether the tag can still be reserved.
func (i *Interface) TagAvailable(tag Tag) bool {
	return i.pool.IsAvailable(tag)
}

// AllocateTag hands out the next available tag, or util.ErrPoolExhausted.
func (i *Interface) AllocateTag() (Tag, error) {
	return i.pool.AllocateNext()
}

// ReleaseTag returns a tag to the pool. It returns false when the tag
// was already available (double release).
func (i *Interface) ReleaseTag(tag Tag) bool {
	return i.pool.Release(tag)
}

// ============================================================================
// Endpoints
// ============================================================================

// Endpoint returns the entry for the given endpoint reference.
func (i *Interface) Endpoint(endpoint string) (EndpointEntry, bool) {
	for _, e := range i.endpoints {
		if e.Endpoint == endpoint {
			return e, true
		}
	}
	return EndpointEntry{}, false
}

// AddEndpoint records an endpoint behind this interface. Adding an
// endpoint that already exists is a no-op and keeps the original
// timestamp.
func (i *Interface) AddEndpoint(endpoint string) {
	if _, ok := i.Endpoint(endpoint); ok {
		return
	}
	i.endpoints = append(i.endpoints, EndpointEntry{
		Endpoint: endpoint,
		LastSeen: time.Now().UTC(),
	})
}

// DeleteEndpoint removes an endpoint. Removing an absent endpoint is a
// no-op.
func (i *Interface) DeleteEndpoint(endpoint string) {
	for idx, e := range i.endpoints {
		if e.Endpoint == endpoint {
			i.endpoints = append(i.endpoints[:idx], i.endpoints[idx+1:]...)
			return
		}
	}
}

// UpdateEndpoint records an endpoint, refreshing its timestamp if it
// already exists.
func (i *Interface) UpdateEndpoint(endpoint string) {
	i.DeleteEndpoint(endpoint)
	i.AddEndpoint(endpoint)
}

// Endpoints returns a copy of the endpoint list in insertion order.
func (i *Interface) Endpoints() []EndpointEntry {
	out := make([]EndpointEntry, len(i.endpoints))
	copy(out, i.endpoints)
	return out
}

// ============================================================================
// Equality
// ============================================================================

// MatchesAddress reports whether the interface's hardware address
// equals the given string.
func (i *Interface) MatchesAddress(addr string) bool {
	return i.address == addr
}

// Equal reports whether two interfaces describe the same port: port
// number, name, address and owning switch identifier all match.
func (i *Interface) Equal(other *Interface) bool {
	if other == nil {
		return false
	}
	return i.portNumber == other.portNumber &&
		i.name == other.name &&
		i.address == other.address &&
		i.sw.ID() == other.sw.ID()
}

// ============================================================================
// Speed
// ============================================================================

// CustomSpeed returns the configured speed override in bytes per
// second, if set.
func (i *Interface) CustomSpeed() (float64, bool) {
	if i.customSpeed == nil {
		return 0, false
	}
	return *i.customSpeed, true
}

// SetCustomSpeed overrides the speed derived from switch information.
// Zero is a valid override.
func (i *Interface) SetCustomSpeed(bytesPerSec float64) {
	i.customSpeed = &bytesPerSec
}

// ClearCustomSpeed removes the override; Speed falls back to what the
// switch advertises.
func (i *Interface) ClearCustomSpeed() {
	i.customSpeed = nil
}

// Speed returns the effective link speed in bytes per second. The
// second result is false when the speed is unknown, which is a valid
// terminal state, not an error; a diagnostic warning is emitted so
// operators can spot ports with unusable feature masks.
func (i *Interface) Speed() (float64, bool) {
	speed, ok := ResolveSpeed(i.customSpeed, i.features, i.isV4Connected())
	if !ok {
		i.log.WithFields(logrus.Fields{
			"switch":   util.TruncateID(i.sw.ID()),
			"port":     i.portNumber,
			"features": fmt.Sprintf("%#x", uint32(i.features)),
		}).Warn("couldn't determine port speed")
	}
	return speed, ok
}

// HumanSpeed returns the link speed as a human-readable string, or ""
// when the speed is unknown.
func (i *Interface) HumanSpeed() string {
	speed, ok := i.Speed()
	if !ok {
		return ""
	}
	return FormatSpeed(speed)
}

// isV4Connected reports whether the switch negotiated the v0x04
// generation on a currently live connection. Gate for the high-speed
// feature tier.
func (i *Interface) isV4Connected() bool {
	return i.sw.IsConnected() && i.sw.ProtocolVersion() == openflow.Version13
}

// ============================================================================
// External representation
// ============================================================================

// Record is the stable external representation of an Interface. It is
// consumed by dashboards and REST responses; field names must not
// change.
type Record struct {
	ID         string                 `json:"id"`
	Name       string                 `json:"name"`
	PortNumber int                    `json:"port_number"`
	MAC        string                 `json:"mac"`
	Switch     string                 `json:"switch"`
	Type       string                 `json:"type"`
	NNI        bool                   `json:"nni"`
	UNI        bool                   `json:"uni"`
	Speed      *float64               `json:"speed"`
	Metadata   map[string]interface{} `json:"metadata"`
	Stats      map[string]interface{} `json:"stats,omitempty"`
}

// Record renders the interface's external representation. Speed is in
// bytes per second and null when unknown.
func (i *Interface) Record() *Record {
	rec := &Record{
		ID:         i.ID(),
		Name:       i.name,
		PortNumber: i.portNumber,
		MAC:        i.address,
		Switch:     i.sw.ID(),
		Type:       "interface",
		NNI:        i.nni,
		UNI:        i.IsUNI(),
		Metadata:   i.meta.Record(),
	}
	if speed, ok := i.Speed(); ok {
		rec.Speed = &speed
	}
	if i.stats != nil {
		rec.Stats = i.stats.Record()
	}
	return rec
}

// JSON renders the external representation as JSON.
func (i *Interface) JSON() ([]byte, error) {
	return json.Marshal(i.Record())
}
