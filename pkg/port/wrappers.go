package port

import (
	"fmt"

	"github.com/flowgate-net/flowgate/pkg/util"
)

// UNI is a user-to-network interface: a customer-facing access port
// together with the tag carried by the customer's traffic.
type UNI struct {
	UserTag   Tag
	Interface *Interface
}

// Reserve claims the user tag from the interface's pool. It fails with
// util.ErrTagNotAvailable when the tag is already in use.
func (u *UNI) Reserve() error {
	if !u.Interface.ReserveTag(u.UserTag) {
		return fmt.Errorf("%w: %s %d on %s",
			util.ErrTagNotAvailable, u.UserTag.Type, u.UserTag.Value, u.Interface.ID())
	}
	return nil
}

// Release returns the user tag to the interface's pool.
func (u *UNI) Release() {
	u.Interface.ReleaseTag(u.UserTag)
}

// NNI is a network-to-network interface: a trunk port between network
// elements.
type NNI struct {
	Interface *Interface
}

// VNNI is a virtual NNI additionally carrying a service tag, supporting
// double-tagged (Q-in-Q) trunking.
type VNNI struct {
	NNI
	ServiceTag Tag
}
