package ops

import (
	"errors"
	"fmt"
	"strings"

	"keyframe-remap/anim"
	"keyframe-remap/diag"
	"keyframe-remap/internal/common"
	"keyframe-remap/remap"
)

// ErrNoValidPairs indicates that suffix pairing produced nothing to
// remap. Fatal for RemapAll only: there is no work to do.
var ErrNoValidPairs = errors.New("no valid bone pairs found")

// BonePair associates a source bone with its suffixed counterpart.
type BonePair struct {
	Source string
	Target string
}

// ResolvePairs pairs each selected bone whose name ends with the suffix
// against the bone named by stripping the suffix. A pair forms only when
// the base bone exists in the object's pose and is itself selected.
// Non-matching bones are silently excluded. An empty suffix never pairs.
func ResolvePairs(obj *anim.Object, selected []string, suffix string) []BonePair {
	if suffix == "" {
		return nil
	}

	inSelection := make(map[string]bool, len(selected))
	for _, name := range selected {
		inSelection[name] = true
	}

	var pairs []BonePair

	for _, name := range selected {
		if !strings.HasSuffix(name, suffix) {
			continue
		}

		base := strings.TrimSuffix(name, suffix)
		if obj.Pose.Get(base) == nil || !inSelection[base] {
			continue
		}

		pairs = append(pairs, BonePair{Source: base, Target: name})
	}

	return pairs
}

// profileFor picks the mapping profile for a pair: the secondary profile
// when its mapper keyword is non-empty and appears in the source bone's
// name, otherwise the primary. The fallback is silent.
func profileFor(cfg remap.Config, sourceBone string) remap.MappingProfile {
	if cfg.SecondaryMapper != "" && strings.Contains(sourceBone, cfg.SecondaryMapper) {
		return cfg.Secondary
	}

	return cfg.Primary
}

// RemapAllReport aggregates the per-pair transfer reports of a batch
// remap.
type RemapAllReport struct {
	Pairs       []BonePair
	Transfers   []*TransferReport
	Diagnostics diag.Diagnostics
}

// RemapAll pairs the selected bones by the config's primary suffix and
// runs one location transfer per pair, selecting each pair's profile by
// the secondary mapper keyword. Zero pairs is ErrNoValidPairs. A failed
// axis within one pair is a warning; earlier pairs stay committed.
func RemapAll(obj *anim.Object, selected []string, cfg remap.Config) (*RemapAllReport, error) {
	pairs := ResolvePairs(obj, selected, cfg.PrimarySuffix)
	if common.IsEmpty(pairs) {
		return nil, ErrNoValidPairs
	}

	report := &RemapAllReport{Pairs: pairs}

	for _, pair := range pairs {
		profile := profileFor(cfg, pair.Source)
		Logger().Info("remapping pair", "source", pair.Source, "target", pair.Target)

		tr, err := Transfer(obj, pair.Source, pair.Target, anim.PropLocation, profile)
		if err != nil {
			return nil, fmt.Errorf("pair %s -> %s: %w", pair.Source, pair.Target, err)
		}

		report.Transfers = append(report.Transfers, tr)
		report.Diagnostics.Merge(tr.Diagnostics)
	}

	report.Diagnostics.AddInfo("remap_all_done",
		fmt.Sprintf("remapped %d bone pairs", len(pairs)), "", "")

	return report, nil
}
