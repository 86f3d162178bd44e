package port

import (
	"fmt"
	"math"

	"github.com/flowgate-net/flowgate/pkg/openflow"
)

// Link speeds in bytes per second for each advertised feature bit.
const (
	speed10Mb  = 10 * 1e6 / 8
	speed100Mb = 100 * 1e6 / 8
	speed1Gb   = 1e9 / 8
	speed10Gb  = 10 * 1e9 / 8
	speed40Gb  = 40 * 1e9 / 8
	speed100Gb = 100 * 1e9 / 8
	speed1Tb   = 1e12 / 8
)

// ResolveSpeed derives the effective link speed in bytes per second.
//
// A custom speed always wins, even zero. Otherwise the feature bitmask
// is consulted: first the speed bits shared by both protocol
// generations (highest wins), then the v0x04-only high-speed bits —
// but only when the switch is known to be connected with v0x04, since
// on the older generation those bit positions carry link-medium flags
// (see package openflow). The second result is false when no speed
// could be determined.
func ResolveSpeed(custom *float64, features openflow.PortFeatures, v4Connected bool) (float64, bool) {
	if custom != nil {
		return *custom, true
	}

	switch {
	case features.Has(openflow.Feature10GbFD):
		return speed10Gb, true
	case features.Has(openflow.Feature1GbHD | openflow.Feature1GbFD):
		return speed1Gb, true
	case features.Has(openflow.Feature100MbHD | openflow.Feature100MbFD):
		return speed100Mb, true
	case features.Has(openflow.Feature10MbHD | openflow.Feature10MbFD):
		return speed10Mb, true
	}

	if !v4Connected {
		return 0, false
	}

	switch {
	case features.Has(openflow.Feature1TbFD):
		return speed1Tb, true
	case features.Has(openflow.Feature100GbFD):
		return speed100Gb, true
	case features.Has(openflow.Feature40GbFD):
		return speed40Gb, true
	}

	return 0, false
}

// FormatSpeed renders a link speed given in bytes per second as a
// human-readable string, e.g. "350 Mbps" or "100 Gbps".
func FormatSpeed(bytesPerSec float64) string {
	bits := bytesPerSec * 8
	if bits == 1e12 {
		return "1 Tbps"
	}
	if bits >= 1e9 {
		return fmt.Sprintf("%d Gbps", int64(math.Round(bits/1e9)))
	}
	return fmt.Sprintf("%d Mbps", int64(math.Round(bits/1e6)))
}
