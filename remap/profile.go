package remap

import "fmt"

// MappingProfile selects, for each source location axis, which target
// axis (and sign) its keyframe values land on, plus the replace policy
// applied to target channels before copying.
type MappingProfile struct {
	// X, Y, Z map the corresponding source axis's positive direction.
	X AxisLabel `yaml:"x"`
	Y AxisLabel `yaml:"y"`
	Z AxisLabel `yaml:"z"`

	// ReplaceAll empties a target channel before inserting. When false,
	// copied keyframes merge into whatever the target already holds.
	ReplaceAll bool `yaml:"replace_all,omitempty"`
}

// IdentityProfile maps every axis onto itself with positive sign.
func IdentityProfile() MappingProfile {
	return MappingProfile{X: AxisXPos, Y: AxisYPos, Z: AxisZPos}
}

// Labels returns the profile's axis labels indexed by source axis.
func (p MappingProfile) Labels() [3]AxisLabel {
	return [3]AxisLabel{p.X, p.Y, p.Z}
}

// Validate reports the first invalid axis label, if any.
func (p MappingProfile) Validate() error {
	for i, l := range p.Labels() {
		if !l.Valid() {
			return fmt.Errorf("axis %d: %w: %q", i, ErrInvalidAxisLabel, l)
		}
	}

	return nil
}

// Config is the full mapping configuration a host hands to the engine:
// two independently configured profiles plus the name-pairing rules for
// batch remapping. Hosts construct one Config at startup and pass it by
// value.
type Config struct {
	Primary   MappingProfile `yaml:"primary"`
	Secondary MappingProfile `yaml:"secondary"`

	// PrimaryMapper and SecondaryMapper are substring keywords tested
	// against a source bone's name to pick the profile for a pair. An
	// empty keyword never matches.
	PrimaryMapper   string `yaml:"primary_mapper,omitempty"`
	SecondaryMapper string `yaml:"secondary_mapper,omitempty"`

	// PrimarySuffix pairs each suffixed bone with its unsuffixed base
	// bone during batch remapping.
	PrimarySuffix   string `yaml:"primary_suffix,omitempty"`
	SecondarySuffix string `yaml:"secondary_suffix,omitempty"`
}

// DefaultConfig returns a config with identity profiles and empty
// pairing rules.
func DefaultConfig() Config {
	return Config{
		Primary:   IdentityProfile(),
		Secondary: IdentityProfile(),
	}
}

// Profile returns the secondary profile when useSecondary is set,
// otherwise the primary.
func (c Config) Profile(useSecondary bool) MappingProfile {
	if useSecondary {
		return c.Secondary
	}

	return c.Primary
}

// Validate checks both profiles.
func (c Config) Validate() error {
	if err := c.Primary.Validate(); err != nil {
		return fmt.Errorf("primary profile: %w", err)
	}

	if err := c.Secondary.Validate(); err != nil {
		return fmt.Errorf("secondary profile: %w", err)
	}

	return nil
}
