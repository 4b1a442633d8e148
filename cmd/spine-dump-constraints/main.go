// spine-dump-constraints loads skeleton data without instantiating a
// skeleton and prints a constraint census plus per-constraint setup values.
// With --dump-animation it also lists every timeline of one animation and
// flags bindings whose target index is out of range.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/lego290/spine2d/internal/cli"
	"github.com/lego290/spine2d/introspect"
)

type options struct {
	YDown         int    `long:"y-down" description:"1 to flip the Y axis before loading" default:"0"`
	DumpAnimation string `long:"dump-animation" description:"also dump the timelines of this animation"`
	Engine        string `long:"engine" description:"engine driver to use"`
	Verbose       bool   `long:"verbose" description:"log integrity findings to stderr"`
}

func main() {
	opt := &options{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = "spine-dump-constraints"
	parser.Usage = "[OPTIONS] <atlas.atlas> <skeleton.(json|skel)>"

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

	cli.SetupLogging(opt.Verbose)

	drv, err := cli.OpenDriver(opt.Engine)
	if err != nil {
		cli.Fail("%v", err)
	}

	drv.SetYDown(opt.YDown != 0)
	atlas, err := cli.LoadAtlas(drv, rest[0])
	if err != nil {
		cli.Fail("%v", err)
	}
	data, err := cli.LoadSkeleton(drv, atlas, rest[1])
	if err != nil {
		cli.Fail("%v", err)
	}

	if err := introspect.DumpConstraints(os.Stdout, data); err != nil {
		cli.Fail("%v", err)
	}
	if opt.DumpAnimation != "" {
		if err := introspect.DumpAnimation(os.Stdout, data, opt.DumpAnimation); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(cli.ExitUsage)
		}
	}
}
