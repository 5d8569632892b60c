package floatmenu

// Handle identifies a coordinator slot holder. Handles compare by pointer,
// so two handles with the same name are still different holders.
type Handle struct {
	name string
}

// NewHandle returns a fresh handle. name is only used for display.
func NewHandle(name string) *Handle {
	return &Handle{name: name}
}

// String returns the name the handle was created with.
func (h *Handle) String() string {
	if h == nil {
		return "<nil>"
	}
	return h.name
}

// Coordinator holds the close callback of the one open menu it governs.
// Each UI tree owns its own coordinator. It is not safe for concurrent use;
// drive it from the update loop.
type Coordinator struct {
	owner   *Handle
	closeFn func()
}

// NewCoordinator returns an empty coordinator.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// Claim makes owner the open menu. A different current owner is closed
// first through its callback. A nil owner is ignored.
func (c *Coordinator) Claim(owner *Handle, closeFn func()) {
	if owner == nil {
		return
	}
	if c.owner != nil && c.owner != owner {
		prev := c.owner
		if c.closeFn != nil {
			c.closeFn()
		}
		// The callback normally releases; make sure it did.
		if c.owner == prev {
			c.owner, c.closeFn = nil, nil
		}
	}
	c.owner, c.closeFn = owner, closeFn
}

// Release clears the slot if owner holds it and reports whether it did.
func (c *Coordinator) Release(owner *Handle) bool {
	if c.owner == nil || c.owner != owner {
		return false
	}
	c.owner, c.closeFn = nil, nil
	return true
}

// Owner returns the current holder, or nil.
func (c *Coordinator) Owner() *Handle {
	return c.owner
}

// Active reports whether a menu holds the slot.
func (c *Coordinator) Active() bool {
	return c.owner != nil
}

// CloseActive closes the current holder, if any.
func (c *Coordinator) CloseActive() {
	if c.closeFn == nil {
		return
	}
	owner := c.owner
	c.closeFn()
	c.Release(owner)
}
