// Package cli carries the plumbing shared by the oracle binaries: driver
// selection, asset loading, logging setup, and the common exit discipline.
// All binaries print their document to stdout and diagnostics to stderr,
// and exit 2 on any usage, I/O, or data error.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/lego290/spine2d"
	"github.com/lego290/spine2d/engine"
)

// ExitUsage is the exit status for every failure mode. The tools are batch
// oracles; callers only distinguish success from not.
const ExitUsage = 2

// Fail prints a diagnostic and exits.
func Fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(ExitUsage)
}

// SetupLogging installs a stderr handler when verbose is set. Stdout stays
// reserved for the document itself.
func SetupLogging(verbose bool) {
	if !verbose {
		return
	}
	spine2d.SetLogger(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})))
}

// OpenDriver resolves an engine driver by name. The empty name falls back
// to the SPINE2D_ENGINE environment variable, then to the sole registered
// driver.
func OpenDriver(name string) (engine.Driver, error) {
	if name == "" {
		name = os.Getenv("SPINE2D_ENGINE")
	}
	return engine.Open(name)
}

// ReadFile slurps one input file.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open: %s", path)
	}
	return data, nil
}

// LoadAtlas reads and parses an atlas file.
func LoadAtlas(drv engine.Driver, path string) (engine.Atlas, error) {
	text, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	atlas, err := drv.LoadAtlas(string(text))
	if err != nil {
		return nil, fmt.Errorf("atlas error: %v", err)
	}
	return atlas, nil
}

// LoadSkeleton reads and parses a skeleton file against an atlas. The .skel
// extension selects the binary format; anything else is treated as JSON.
func LoadSkeleton(drv engine.Driver, atlas engine.Atlas, path string) (engine.SkeletonData, error) {
	raw, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	var data engine.SkeletonData
	if strings.HasSuffix(path, ".skel") {
		data, err = drv.LoadSkeletonBinary(atlas, raw, path)
	} else {
		data, err = drv.LoadSkeletonJSON(atlas, string(raw), path)
	}
	if err != nil {
		return nil, fmt.Errorf("skeleton data error: %v", err)
	}
	return data, nil
}

// ParseBoolFlag follows the tools' 0|1 convention: any nonzero integer is
// true, anything unparsable is false.
func ParseBoolFlag(s string) bool {
	v, err := strconv.Atoi(s)
	return err == nil && v != 0
}
