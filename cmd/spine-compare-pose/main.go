// spine-compare-pose compares two pose snapshot documents within a numeric
// tolerance and reports the worst offenders per section. It exists so two
// runtimes posing the same skeleton can be diffed without drowning in
// float noise.
package main

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/lego290/spine2d/compare"
	"github.com/lego290/spine2d/internal/cli"
)

type options struct {
	Eps  float64 `long:"eps" description:"difference threshold" default:"0.001"`
	Top  int     `long:"top" description:"worst offenders to list per section" default:"20"`
	Bone string  `long:"bone" description:"dump this bone from both documents"`
}

func main() {
	opt := &options{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = "spine-compare-pose"
	parser.Usage = "[OPTIONS] <ref.json> <cand.json>"

	rest, err := parser.ParseArgs(os.Args[1:])
	if err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(cli.ExitUsage)
	}
	if len(rest) != 2 {
		parser.WriteHelp(os.Stderr)
		os.Exit(cli.ExitUsage)
	}

	ref, err := cli.ReadFile(rest[0])
	if err != nil {
		cli.Fail("%v", err)
	}
	cand, err := cli.ReadFile(rest[1])
	if err != nil {
		cli.Fail("%v", err)
	}

	err = compare.Pose(os.Stdout, ref, cand, compare.Options{
		Eps:  opt.Eps,
		Top:  opt.Top,
		Bone: opt.Bone,
	})
	if err != nil {
		cli.Fail("%v", err)
	}
}
