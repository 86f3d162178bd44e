package port

import "github.com/flowgate-net/flowgate/pkg/openflow"

// Switch is the collaborator an Interface is bound to. The Interface
// holds a non-owning reference and uses it only for identity and
// protocol-version queries; connection management lives elsewhere.
type Switch interface {
	// ID returns the stable switch identifier (datapath id).
	ID() string

	// IsConnected reports whether the switch currently has a live
	// control connection.
	IsConnected() bool

	// ProtocolVersion returns the negotiated protocol generation.
	// Only meaningful while IsConnected is true.
	ProtocolVersion() openflow.Version
}

// Stats is the optional statistics collaborator. Its record is consumed
// verbatim into the interface's external representation.
type Stats interface {
	Record() map[string]interface{}
}
