// Package port models a switch port inside the control plane: its
// identity, the finite pool of tags assignable to traffic crossing it,
// and the link speed derived from what the switch advertises.
//
// Interfaces and their tag pools are not safe for concurrent mutation.
// Reserve, release and allocate are check-then-act sequences; a
// concurrent controller must serialize mutating calls per Interface
// (one lock per port, or a single goroutine owning the port). Reads may
// run concurrently with each other but not with a mutation.
package port

// TagType identifies the kind of tag carried by traffic.
type TagType int

const (
	TagTypeVLAN TagType = iota + 1
	TagTypeVLANQinQ
	TagTypeMPLS
)

// String returns the wire-format name of the tag type.
func (t TagType) String() string {
	switch t {
	case TagTypeVLAN:
		return "vlan"
	case TagTypeVLANQinQ:
		return "vlan_qinq"
	case TagTypeMPLS:
		return "mpls"
	default:
		return "unknown"
	}
}

// Tag is an immutable value identifying one unit of an interface's tag
// space.
type Tag struct {
	Type  TagType
	Value int
}

// VLANTag creates a VLAN tag with the given id.
func VLANTag(value int) Tag {
	return Tag{Type: TagTypeVLAN, Value: value}
}

// Equal reports whether two tags have the same type and value.
func (t Tag) Equal(other Tag) bool {
	return t.Type == other.Type && t.Value == other.Value
}
