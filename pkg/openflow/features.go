// Package openflow defines the protocol-level port constants flowgate
// needs: negotiated protocol generations, per-port feature bitmasks and
// port state bitmasks.
//
// Feature bits are tricky because the two protocol generations overlap.
// Bits 0-6 (10 Mbps through 10 Gbps) mean the same thing in v0x01 and
// v0x04. Above bit 6 the generations diverge: v0x04 continues with
// 40 Gbps, 100 Gbps and 1 Tbps, while v0x01 uses the same positions for
// link-medium flags (copper, fiber, autoneg). A v0x01 copper port would
// therefore read as "40 Gbps capable" if the high-speed bits were tested
// without confirming the negotiated generation. Speed resolution must
// only test the high-speed tier on switches known to speak v0x04.
package openflow

// Version identifies a negotiated protocol generation.
type Version uint8

const (
	// Version10 is the first-generation protocol (wire version 0x01).
	Version10 Version = 0x01
	// Version13 is the newer generation (wire version 0x04) that added
	// the high-speed feature bits.
	Version13 Version = 0x04
)

// PortFeatures is the capability bitmask a switch advertises per port.
type PortFeatures uint32

// Speed bits shared by both protocol generations.
const (
	Feature10MbHD  PortFeatures = 1 << 0 // 10 Mbps half-duplex
	Feature10MbFD  PortFeatures = 1 << 1 // 10 Mbps full-duplex
	Feature100MbHD PortFeatures = 1 << 2 // 100 Mbps half-duplex
	Feature100MbFD PortFeatures = 1 << 3 // 100 Mbps full-duplex
	Feature1GbHD   PortFeatures = 1 << 4 // 1 Gbps half-duplex
	Feature1GbFD   PortFeatures = 1 << 5 // 1 Gbps full-duplex
	Feature10GbFD  PortFeatures = 1 << 6 // 10 Gbps full-duplex
)

// High-speed bits defined only by v0x04. On a v0x01 switch these
// positions carry the link-medium flags below.
const (
	Feature40GbFD  PortFeatures = 1 << 7
	Feature100GbFD PortFeatures = 1 << 8
	Feature1TbFD   PortFeatures = 1 << 9
)

// v0x04 link-medium and flow-control bits.
const (
	FeatureOther     PortFeatures = 1 << 10
	FeatureCopper    PortFeatures = 1 << 11
	FeatureFiber     PortFeatures = 1 << 12
	FeatureAutoneg   PortFeatures = 1 << 13
	FeaturePause     PortFeatures = 1 << 14
	FeaturePauseAsym PortFeatures = 1 << 15
)

// v0x01 link-medium and flow-control bits. Note the overlap with the
// v0x04 high-speed tier.
const (
	FeatureCopperV1    PortFeatures = 1 << 7
	FeatureFiberV1     PortFeatures = 1 << 8
	FeatureAutonegV1   PortFeatures = 1 << 9
	FeaturePauseV1     PortFeatures = 1 << 10
	FeaturePauseAsymV1 PortFeatures = 1 << 11
)

// Has reports whether any of the given bits are set.
func (f PortFeatures) Has(bits PortFeatures) bool {
	return f&bits != 0
}

// PortState is the per-port status bitmask reported by the switch.
type PortState uint32

const (
	StateLinkDown PortState = 1 << 0
	StateBlocked  PortState = 1 << 1
	StateLive     PortState = 1 << 2
)

// LinkDown reports whether no physical link is present.
func (s PortState) LinkDown() bool {
	return s&StateLinkDown != 0
}

// Blocked reports whether the port is blocked by the switch.
func (s PortState) Blocked() bool {
	return s&StateBlocked != 0
}

// Live reports whether the port is live for fast-failover purposes.
func (s PortState) Live() bool {
	return s&StateLive != 0
}
