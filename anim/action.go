package anim

// Action is a named container of animation channels. Exactly one action
// is active on an object at a time; channels outside the active action
// are invisible to every operation.
//
// Invariant: at most one channel exists per (bone, property, index)
// triple. Find relies on this; GetOrCreate preserves it.
type Action struct {
	Name     string
	Channels []*Channel
}

// Find returns the channel for (bone, property, index), or nil when
// absent. Find never creates channels.
func (a *Action) Find(bone string, property Property, index int) *Channel {
	for _, c := range a.Channels {
		if c.Bone == bone && c.Property == property && c.Index == index {
			return c
		}
	}

	return nil
}

// GetOrCreate returns the channel for (bone, property, index), creating
// an empty one on the action if absent.
func (a *Action) GetOrCreate(bone string, property Property, index int) *Channel {
	if c := a.Find(bone, property, index); c != nil {
		return c
	}

	c := &Channel{Bone: bone, Property: property, Index: index}
	a.Channels = append(a.Channels, c)

	return c
}
