package port

import (
	"testing"

	"github.com/flowgate-net/flowgate/pkg/openflow"
)

func TestResolveSpeed_Features(t *testing.T) {
	tests := []struct {
		name        string
		features    openflow.PortFeatures
		v4Connected bool
		want        float64
		wantKnown   bool
	}{
		{"no features", 0, false, 0, false},
		{"10G FD", openflow.Feature10GbFD, false, 1.25e9, true},
		{"1G FD", openflow.Feature1GbFD, false, 1.25e8, true},
		{"1G HD", openflow.Feature1GbHD, false, 1.25e8, true},
		{"100M FD", openflow.Feature100MbFD, false, 1.25e7, true},
		{"10M HD", openflow.Feature10MbHD, false, 1.25e6, true},
		{"highest shared bit wins", openflow.Feature10GbFD | openflow.Feature100MbFD, false, 1.25e9, true},
		{"1T FD on v4", openflow.Feature1TbFD, true, 1.25e11, true},
		{"100G FD on v4", openflow.Feature100GbFD, true, 1.25e10, true},
		{"40G FD on v4", openflow.Feature40GbFD, true, 5e9, true},
		{"1T beats 40G on v4", openflow.Feature1TbFD | openflow.Feature40GbFD, true, 1.25e11, true},
		{"shared tier beats high tier", openflow.Feature10GbFD | openflow.Feature1TbFD, true, 1.25e9, true},
		// The high-speed bits are meaningless without a confirmed v0x04
		// connection: on v0x01 the same positions are link-medium flags.
		{"1T FD without v4 is unknown", openflow.Feature1TbFD, false, 0, false},
		{"40G FD without v4 is unknown", openflow.Feature40GbFD, false, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := ResolveSpeed(nil, tt.features, tt.v4Connected)
			if known != tt.wantKnown {
				t.Fatalf("ResolveSpeed() known = %v, want %v", known, tt.wantKnown)
			}
			if got != tt.want {
				t.Errorf("ResolveSpeed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveSpeed_CustomOverride(t *testing.T) {
	custom := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		custom *float64
		want   float64
	}{
		{"custom beats features", custom(5e8), 5e8},
		{"zero is a valid override", custom(0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Features advertise 10G but the override must win.
			got, known := ResolveSpeed(tt.custom, openflow.Feature10GbFD, true)
			if !known {
				t.Fatal("ResolveSpeed() with custom speed should always be known")
			}
			if got != tt.want {
				t.Errorf("ResolveSpeed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatSpeed(t *testing.T) {
	tests := []struct {
		name        string
		bytesPerSec float64
		want        string
	}{
		{"exactly 1 Tbps", 1.25e11, "1 Tbps"},
		{"100 Gbps", 1.25e10, "100 Gbps"},
		{"12.5 GB/s is 100 Gbps", 12.5e9, "100 Gbps"},
		{"10 Gbps", 1.25e9, "10 Gbps"},
		{"1 Gbps", 1.25e8, "1 Gbps"},
		{"350 Mbps", 350e6 / 8, "350 Mbps"},
		{"100 Mbps", 1.25e7, "100 Mbps"},
		{"10 Mbps", 1.25e6, "10 Mbps"},
		{"zero", 0, "0 Mbps"},
		{"just under a gig rounds to Mbps", 124e6, "992 Mbps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSpeed(tt.bytesPerSec); got != tt.want {
				t.Errorf("FormatSpeed(%v) = %q, want %q", tt.bytesPerSec, got, tt.want)
			}
		})
	}
}
