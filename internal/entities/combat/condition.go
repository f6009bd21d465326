package combat

// Condition is one active status with its per-instance counters
type Condition struct {
	Kind StatusKind `json:"kind"`
	// SleepTurns counts down to waking
	SleepTurns int `json:"sleep_turns,omitempty"`
	// ToxicCounter is k in the k/16 toxic damage fraction
	ToxicCounter int `json:"toxic_counter,omitempty"`
}

// Conditions holds every active status of a combatant. Major always names
// the single active major status, or is empty.
type Conditions struct {
	Major  StatusKind                `json:"major,omitempty"`
	Active map[StatusKind]*Condition `json:"active,omitempty"`
}

// Has reports whether kind is active
func (c *Conditions) Has(kind StatusKind) bool {
	_, ok := c.Active[kind]
	return ok
}

// Get returns the active condition of kind
func (c *Conditions) Get(kind StatusKind) (*Condition, bool) {
	cond, ok := c.Active[kind]
	return cond, ok
}

// Install adds cond and makes it the major status
func (c *Conditions) Install(cond *Condition) {
	if c.Active == nil {
		c.Active = make(map[StatusKind]*Condition)
	}
	c.Active[cond.Kind] = cond
	c.Major = cond.Kind
}

// Remove drops kind, clearing the major reference when it pointed at kind
func (c *Conditions) Remove(kind StatusKind) {
	delete(c.Active, kind)
	if c.Major == kind {
		c.Major = StatusNone
	}
}

// Kinds returns the active kinds in a stable order
func (c *Conditions) Kinds() []StatusKind {
	var out []StatusKind
	for _, kind := range []StatusKind{StatusBurn, StatusParalysis, StatusFreeze, StatusSleep, StatusPoison, StatusToxic} {
		if c.Has(kind) {
			out = append(out, kind)
		}
	}
	return out
}
