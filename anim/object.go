package anim

// Bone is a pose bone, identified by a name unique within its pose.
type Bone struct {
	Name string
}

// Pose is the named-bone hierarchy of an object.
type Pose struct {
	Bones []*Bone
}

// Get returns the bone with the given name, or nil.
func (p *Pose) Get(name string) *Bone {
	for _, b := range p.Bones {
		if b.Name == name {
			return b
		}
	}

	return nil
}

// Add appends a new bone with the given name and returns it. If a bone
// with that name already exists it is returned unchanged.
func (p *Pose) Add(name string) *Bone {
	if b := p.Get(name); b != nil {
		return b
	}

	b := &Bone{Name: name}
	p.Bones = append(p.Bones, b)

	return b
}

// Object is an animatable object: a pose of named bones plus at most
// one active action.
type Object struct {
	Name   string
	Pose   *Pose
	Action *Action
}

// NewObject returns an object with an empty pose and no action.
func NewObject(name string) *Object {
	return &Object{Name: name, Pose: &Pose{}}
}

// ActiveAction returns the object's active action, or
// ErrNoAnimationData when the object has none.
func (o *Object) ActiveAction() (*Action, error) {
	if o.Action == nil {
		return nil, ErrNoAnimationData
	}

	return o.Action, nil
}

// EnsureAction returns the active action, creating an empty one with
// the given name when the object has none.
func (o *Object) EnsureAction(name string) *Action {
	if o.Action == nil {
		o.Action = &Action{Name: name}
	}

	return o.Action
}
