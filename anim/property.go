package anim

// Property identifies one animatable transform property of a pose bone.
// The string values match the data path component used by the host.
type Property string

const (
	PropLocation           Property = "location"
	PropRotationEuler      Property = "rotation_euler"
	PropRotationQuaternion Property = "rotation_quaternion"
	PropScale              Property = "scale"
)

// Valid returns true if p is a recognized transform property.
func (p Property) Valid() bool {
	switch p {
	case PropLocation, PropRotationEuler, PropRotationQuaternion, PropScale:
		return true
	default:
		return false
	}
}

// Components returns the number of animatable axes the property has:
// 4 for quaternion rotation, 3 for everything else.
func (p Property) Components() int {
	if p == PropRotationQuaternion {
		return 4
	}

	return 3
}

// TransformProperties returns all transform properties in a fixed order.
// Swap iterates this set.
func TransformProperties() []Property {
	return []Property{PropLocation, PropRotationEuler, PropRotationQuaternion, PropScale}
}
