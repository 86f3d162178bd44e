package port

import "testing"

func TestTagEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Tag
		want bool
	}{
		{"same type and value", VLANTag(100), VLANTag(100), true},
		{"different value", VLANTag(100), VLANTag(101), false},
		{"different type", VLANTag(100), Tag{Type: TagTypeMPLS, Value: 100}, false},
		{"qinq vs vlan", Tag{Type: TagTypeVLANQinQ, Value: 5}, VLANTag(5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Equality is symmetric
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestTagTypeString(t *testing.T) {
	tests := []struct {
		tt   TagType
		want string
	}{
		{TagTypeVLAN, "vlan"},
		{TagTypeVLANQinQ, "vlan_qinq"},
		{TagTypeMPLS, "mpls"},
		{TagType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.tt.String(); got != tt.want {
			t.Errorf("TagType(%d).String() = %q, want %q", int(tt.tt), got, tt.want)
		}
	}
}
