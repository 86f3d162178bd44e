package port

import (
	"fmt"

	"github.com/flowgate-net/flowgate/pkg/util"
)

// TagPool is the set of tags currently unassigned on one interface.
//
// The pool behaves as a stack: it is seeded in ascending order and
// AllocateNext removes from the end, so a fresh full pool hands out
// VLAN 4095 first. Connection-setup code depends on this descending
// order; do not reorder to lowest-first.
//
// Every mutating operation re-checks membership before acting, so the
// pool never holds two equal tags and releasing a tag twice is safe.
// A TagPool is owned by exactly one Interface and shares its
// single-writer rule.
type TagPool struct {
	tags []Tag
}

// VLAN ids seeded into a full pool. The upper bound is the full 12-bit
// space; reserved-id handling (0 and 4095) is left to provisioning
// policy, not the pool.
const (
	minVLAN = 1
	maxVLAN = 4095
)

// NewTagPool creates a pool seeded with one VLAN tag for every id in
// [1, 4095], ascending.
func NewTagPool() *TagPool {
	p := &TagPool{tags: make([]Tag, 0, maxVLAN)}
	for i := minVLAN; i <= maxVLAN; i++ {
		p.tags = append(p.tags, VLANTag(i))
	}
	return p
}

// NewTagPoolFromRange creates a pool seeded with VLAN tags from a range
// specification such as "100-199,300". Ids must lie in [1, 4095];
// duplicates in the specification are collapsed.
func NewTagPoolFromRange(spec string) (*TagPool, error) {
	values, err := util.ExpandRange(spec)
	if err != nil {
		return nil, fmt.Errorf("%w: vlan range %q: %v", util.ErrInvalidConfig, spec, err)
	}

	p := &TagPool{tags: make([]Tag, 0, len(values))}
	for _, v := range values {
		if v < minVLAN || v > maxVLAN {
			return nil, fmt.Errorf("%w: vlan id %d out of range [%d, %d]",
				util.ErrInvalidConfig, v, minVLAN, maxVLAN)
		}
		p.Release(VLANTag(v))
	}
	return p, nil
}

// Reserve removes the given tag from the pool. It returns false, with
// no side effect, when the tag is not available.
func (p *TagPool) Reserve(tag Tag) bool {
	for i, t := range p.tags {
		if tag.Equal(t) {
			p.tags = append(p.tags[:i], p.tags[i+1:]...)
			return true
		}
	}
	return false
}

// IsAvailable reports whether the tag is present in the pool.
func (p *TagPool) IsAvailable(tag Tag) bool {
	for _, t := range p.tags {
		if tag.Equal(t) {
			return true
		}
	}
	return false
}

// AllocateNext removes and returns the most recently inserted tag.
// It returns util.ErrPoolExhausted when the pool is empty; callers
// treat that as an expected provisioning outcome, not a fault.
func (p *TagPool) AllocateNext() (Tag, error) {
	if len(p.tags) == 0 {
		return Tag{}, util.ErrPoolExhausted
	}
	tag := p.tags[len(p.tags)-1]
	p.tags = p.tags[:len(p.tags)-1]
	return tag, nil
}

// Release puts a tag back into the pool. It returns false when an equal
// tag is already present, protecting against double release.
func (p *TagPool) Release(tag Tag) bool {
	if p.IsAvailable(tag) {
		return false
	}
	p.tags = append(p.tags, tag)
	return true
}

// Size returns the number of available tags.
func (p *TagPool) Size() int {
	return len(p.tags)
}
