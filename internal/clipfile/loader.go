package clipfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"keyframe-remap/anim"
	"keyframe-remap/utils"
)

// Load reads and decodes a YAML clip file into the data model.
func Load(path string) (*anim.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read clip file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes YAML clip data into the data model.
func Parse(data []byte) (*anim.Object, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse clip YAML: %w", err)
	}

	return fromFile(&f)
}

// Save encodes the object and writes it to the given path.
func Save(obj *anim.Object, path string) error {
	data, err := Marshal(obj)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write clip file %s: %w", path, err)
	}

	return nil
}

// Marshal encodes the object as YAML clip data.
func Marshal(obj *anim.Object) ([]byte, error) {
	data, err := yaml.Marshal(toFile(obj))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal clip: %w", err)
	}

	return data, nil
}

// fromFile builds the data model, re-inserting every keyframe so the
// channel ordering and uniqueness invariants hold regardless of how the
// file was authored.
func fromFile(f *File) (*anim.Object, error) {
	obj := anim.NewObject(f.Object)
	for _, name := range f.Bones {
		obj.Pose.Add(name)
	}

	if f.Action == nil {
		return obj, nil
	}

	action := obj.EnsureAction(f.Action.Name)

	for _, cd := range f.Action.Channels {
		prop := anim.Property(cd.Property)
		if !prop.Valid() {
			return nil, fmt.Errorf("channel for bone %q: %w: %q", cd.Bone, anim.ErrUnsupportedProperty, cd.Property)
		}

		if !utils.IsInRange(0, cd.Index, prop.Components()-1) {
			return nil, fmt.Errorf("channel for bone %q: %w: %d", cd.Bone, anim.ErrAxisOutOfRange, cd.Index)
		}

		if action.Find(cd.Bone, prop, cd.Index) != nil {
			return nil, fmt.Errorf("duplicate channel for (%s, %s, %d)", cd.Bone, prop, cd.Index)
		}

		c := action.GetOrCreate(cd.Bone, prop, cd.Index)

		for _, kd := range cd.Keys {
			kp := c.Insert(kd.Frame, kd.Value)
			if err := applyKey(kp, kd); err != nil {
				return nil, fmt.Errorf("keyframe at frame %v on %s: %w", kd.Frame, c.Path(), err)
			}
		}
	}

	return obj, nil
}

// applyKey overwrites a freshly inserted point's metadata with whatever
// the file specifies, leaving insertion defaults for omitted fields.
func applyKey(kp *anim.KeyframePoint, kd KeyDef) error {
	if v, err := parseHandle(kd.HandleLeft); err != nil {
		return fmt.Errorf("handle_left: %w", err)
	} else if v != nil {
		kp.HandleLeft = *v
	}

	if v, err := parseHandle(kd.HandleRight); err != nil {
		return fmt.Errorf("handle_right: %w", err)
	} else if v != nil {
		kp.HandleRight = *v
	}

	if kd.Interpolation != "" {
		v, err := anim.ParseInterpolation(kd.Interpolation)
		if err != nil {
			return err
		}

		kp.Interpolation = v
	}

	if kd.Easing != "" {
		v, err := anim.ParseEasing(kd.Easing)
		if err != nil {
			return err
		}

		kp.Easing = v
	}

	if kd.HandleLeftType != "" {
		v, err := anim.ParseHandleType(kd.HandleLeftType)
		if err != nil {
			return err
		}

		kp.HandleLeftType = v
	}

	if kd.HandleRightType != "" {
		v, err := anim.ParseHandleType(kd.HandleRightType)
		if err != nil {
			return err
		}

		kp.HandleRightType = v
	}

	return nil
}

func parseHandle(v []float64) (*anim.Vec2, error) {
	if v == nil {
		return nil, nil
	}

	if len(v) != 2 {
		return nil, fmt.Errorf("expected [frame, value], got %d elements", len(v))
	}

	return &anim.Vec2{X: v[0], Y: v[1]}, nil
}

// toFile flattens the data model into the YAML schema.
func toFile(obj *anim.Object) *File {
	f := &File{Object: obj.Name}

	for _, b := range obj.Pose.Bones {
		f.Bones = append(f.Bones, b.Name)
	}

	if obj.Action == nil {
		return f
	}

	f.Action = &ActionDef{Name: obj.Action.Name}

	for _, c := range obj.Action.Channels {
		cd := ChannelDef{Bone: c.Bone, Property: string(c.Property), Index: c.Index}

		for _, kp := range c.Keyframes {
			cd.Keys = append(cd.Keys, KeyDef{
				Frame:           kp.Frame,
				Value:           kp.Value,
				HandleLeft:      []float64{kp.HandleLeft.X, kp.HandleLeft.Y},
				HandleRight:     []float64{kp.HandleRight.X, kp.HandleRight.Y},
				Interpolation:   kp.Interpolation.String(),
				Easing:          kp.Easing.String(),
				HandleLeftType:  kp.HandleLeftType.String(),
				HandleRightType: kp.HandleRightType.String(),
			})
		}

		f.Action.Channels = append(f.Action.Channels, cd)
	}

	return f
}
