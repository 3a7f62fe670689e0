// Package main provides the CLI entrypoint for keyframe-remap.
//
// keyframe-remap operates on YAML clip files:
//   - Copies keyframes between two bones with axis remapping
//   - Flips a channel's values in place
//   - Swaps two bones' full keyframe state
//   - Batch-remaps suffix-paired bones
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"keyframe-remap/anim"
	"keyframe-remap/diag"
	"keyframe-remap/internal/clipfile"
	"keyframe-remap/internal/common"
	"keyframe-remap/ops"
	"keyframe-remap/remap"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error

	switch cmd := os.Args[1]; cmd {
	case "copy":
		err = runCopy(os.Args[2:])
	case "copy-all":
		err = runCopyAll(os.Args[2:])
	case "flip":
		err = runFlip(os.Args[2:])
	case "swap":
		err = runSwap(os.Args[2:])
	case "remap-all":
		err = runRemapAll(os.Args[2:])
	case "dump":
		err = runDump(os.Args[2:])
	case "help", "-h", "-help", "--help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `keyframe-remap - copy, remap, flip, and swap bone keyframes in a YAML clip

Commands:
  copy       copy one location axis between the two selected bones
  copy-all   copy all location axes between the two selected bones
  flip       negate one channel of the active bone in place
  swap       exchange the full keyframe state of the two selected bones
  remap-all  remap every suffix-paired bone in the selection
  dump       pretty-print the parsed clip

Run a command with -h for its flags.`)
}

// commonFlags are shared by every mutating command.
type commonFlags struct {
	clip     string
	config   string
	out      string
	selected string
	active   string
	verbose  bool
}

func addCommon(fs *flag.FlagSet) *commonFlags {
	var c commonFlags

	fs.StringVar(&c.clip, "clip", "", "clip YAML file (required)")
	fs.StringVar(&c.config, "config", "", "mapping config YAML file (default: identity mapping)")
	fs.StringVar(&c.out, "o", "", "output clip file (default: overwrite -clip)")
	fs.StringVar(&c.selected, "select", "", "comma-separated selected bone names")
	fs.StringVar(&c.active, "active", "", "active bone name (default: first selected)")
	fs.BoolVar(&c.verbose, "v", false, "debug logging to stderr")

	return &c
}

// session loads the clip and config and builds the selection context.
func (c *commonFlags) session() (*ops.Session, *anim.Object, error) {
	if c.clip == "" {
		return nil, nil, errors.New("-clip is required")
	}

	if c.verbose {
		ops.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	obj, err := clipfile.Load(c.clip)
	if err != nil {
		return nil, nil, err
	}

	cfg := remap.DefaultConfig()
	if c.config != "" {
		loaded, err := remap.LoadFile(c.config)
		if err != nil {
			return nil, nil, err
		}

		cfg = *loaded
	}

	var selected []string
	for _, name := range strings.Split(c.selected, ",") {
		if name = strings.TrimSpace(name); name != "" {
			selected = append(selected, name)
		}
	}

	active := c.active
	if active == "" {
		active, _ = common.First(selected)
	}

	return &ops.Session{
		Object:   obj,
		Selected: selected,
		Active:   active,
		Config:   cfg,
	}, obj, nil
}

// finish prints diagnostics, persists the clip on success, and turns a
// cancelled outcome into a nonzero exit.
func (c *commonFlags) finish(obj *anim.Object, outcome ops.Outcome, d diag.Diagnostics) error {
	for _, dg := range d.All() {
		fmt.Fprintf(os.Stderr, "%s: %s\n", dg.Severity, dg)
	}

	if outcome == ops.Cancelled {
		return errors.New("operation cancelled")
	}

	out := c.out
	if out == "" {
		out = c.clip
	}

	return clipfile.Save(obj, out)
}

// parseAxis accepts X/Y/Z (case-insensitive) or a numeric index.
func parseAxis(s string) (int, error) {
	switch strings.ToUpper(s) {
	case "X", "0":
		return 0, nil
	case "Y", "1":
		return 1, nil
	case "Z", "2":
		return 2, nil
	default:
		return 0, fmt.Errorf("invalid axis %q (want X, Y, or Z)", s)
	}
}

func runCopy(args []string) error {
	fs := flag.NewFlagSet("copy", flag.ExitOnError)
	c := addCommon(fs)
	axis := fs.String("axis", "X", "source axis to copy (X, Y, or Z)")
	secondary := fs.Bool("secondary", false, "use the secondary mapping profile")

	if err := fs.Parse(args); err != nil {
		return err
	}

	idx, err := parseAxis(*axis)
	if err != nil {
		return err
	}

	s, obj, err := c.session()
	if err != nil {
		return err
	}

	outcome, d := s.CopyOneAxis(idx, *secondary)

	return c.finish(obj, outcome, d)
}

func runCopyAll(args []string) error {
	fs := flag.NewFlagSet("copy-all", flag.ExitOnError)
	c := addCommon(fs)
	secondary := fs.Bool("secondary", false, "use the secondary mapping profile")

	if err := fs.Parse(args); err != nil {
		return err
	}

	s, obj, err := c.session()
	if err != nil {
		return err
	}

	outcome, d := s.CopyAllAxes(*secondary)

	return c.finish(obj, outcome, d)
}

func runFlip(args []string) error {
	fs := flag.NewFlagSet("flip", flag.ExitOnError)
	c := addCommon(fs)
	property := fs.String("property", string(anim.PropLocation), "property to flip (location, rotation_euler, scale)")
	axis := fs.String("axis", "X", "axis to flip (X, Y, or Z)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	idx, err := parseAxis(*axis)
	if err != nil {
		return err
	}

	s, obj, err := c.session()
	if err != nil {
		return err
	}

	outcome, d := s.FlipAxis(anim.Property(*property), idx)

	return c.finish(obj, outcome, d)
}

func runSwap(args []string) error {
	fs := flag.NewFlagSet("swap", flag.ExitOnError)
	c := addCommon(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	s, obj, err := c.session()
	if err != nil {
		return err
	}

	outcome, d := s.SwapKeyframes()

	return c.finish(obj, outcome, d)
}

func runRemapAll(args []string) error {
	fs := flag.NewFlagSet("remap-all", flag.ExitOnError)
	c := addCommon(fs)

	if err := fs.Parse(args); err != nil {
		return err
	}

	s, obj, err := c.session()
	if err != nil {
		return err
	}

	outcome, d := s.RemapAllBones()

	return c.finish(obj, outcome, d)
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	clip := fs.String("clip", "", "clip YAML file (required)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *clip == "" {
		return errors.New("-clip is required")
	}

	obj, err := clipfile.Load(*clip)
	if err != nil {
		return err
	}

	spew.Dump(obj)

	return nil
}
