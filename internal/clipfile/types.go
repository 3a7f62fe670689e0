package clipfile

// File represents the root of a YAML clip file.
type File struct {
	// Object is the armature object's name.
	Object string `yaml:"object"`

	// Bones lists the pose bone names.
	Bones []string `yaml:"bones"`

	// Action is the active action, if the object has one.
	Action *ActionDef `yaml:"action,omitempty"`
}

// ActionDef is the active action and its channels.
type ActionDef struct {
	Name     string       `yaml:"name"`
	Channels []ChannelDef `yaml:"channels,omitempty"`
}

// ChannelDef is one (bone, property, index) channel.
type ChannelDef struct {
	Bone     string   `yaml:"bone"`
	Property string   `yaml:"property"`
	Index    int      `yaml:"index"`
	Keys     []KeyDef `yaml:"keys,omitempty"`
}

// KeyDef is one keyframe. Handles are [frame, value] pairs; enum fields
// use String names and default when omitted.
type KeyDef struct {
	Frame float64 `yaml:"frame"`
	Value float64 `yaml:"value"`

	HandleLeft  []float64 `yaml:"handle_left,omitempty"`
	HandleRight []float64 `yaml:"handle_right,omitempty"`

	Interpolation   string `yaml:"interpolation,omitempty"`
	Easing          string `yaml:"easing,omitempty"`
	HandleLeftType  string `yaml:"handle_left_type,omitempty"`
	HandleRightType string `yaml:"handle_right_type,omitempty"`
}
