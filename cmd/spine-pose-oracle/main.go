// spine-pose-oracle loads a skeleton, poses it either from a single
// animation at an absolute time or from an ordered scenario command list,
// and prints one JSON snapshot of the resulting pose on stdout.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lego290/spine2d/engine"
	"github.com/lego290/spine2d/internal/cli"
	"github.com/lego290/spine2d/scenario"
	"github.com/lego290/spine2d/snapshot"
)

func usage() {
	fmt.Fprint(os.Stderr, "Usage:\n"+
		"  spine-pose-oracle <atlas.atlas> <skeleton.(json|skel)> <animation> <time> [--y-down 0|1] [--physics none|reset|update|pose]\n"+
		"  spine-pose-oracle <atlas.atlas> <skeleton.(json|skel)> [--y-down 0|1] <commands...>\n"+
		"Global options:\n"+
		"  --engine <name>   engine driver to use (default: the sole registered driver)\n"+
		"  --verbose         log interpreter trace to stderr\n"+
		"Commands:\n"+
		"  --set-skin <name|none>\n"+
		"  --physics <none|reset|update|pose>\n"+
		"  --mix <from> <to> <duration>\n"+
		"  --set <track> <animation> <loop 0|1>\n"+
		"  --add <track> <animation> <loop 0|1> <delay>\n"+
		"  --set-empty <track> <mixDuration>\n"+
		"  --add-empty <track> <mixDuration> <delay>\n"+
		"  --dump-slot-vertices <slotName>\n"+
		"  --entry-alpha <alpha>\n"+
		"  --entry-event-threshold <threshold>\n"+
		"  --entry-alpha-attachment-threshold <threshold>\n"+
		"  --entry-mix-attachment-threshold <threshold>\n"+
		"  --entry-mix-draw-order-threshold <threshold>\n"+
		"  --entry-hold-previous <0|1>\n"+
		"  --entry-mix-blend <setup|first|replace|add>\n"+
		"  --entry-reverse <0|1>\n"+
		"  --entry-shortest-rotation <0|1>\n"+
		"  --entry-reset-rotation-directions\n"+
		"  --dump-update-cache\n"+
		"  --step <dt>\n")
}

func main() {
	args := os.Args
	if len(args) < 3 {
		usage()
		os.Exit(cli.ExitUsage)
	}

	atlasPath := args[1]
	skeletonPath := args[2]

	legacy := false
	animation := ""
	var absTime float32
	if len(args) >= 5 && args[3][0] != '-' {
		legacy = true
		animation = args[3]
		t, err := parseFloat(args[4])
		if err != nil {
			cli.Fail("invalid time: %s", args[4])
		}
		absTime = t
	}

	yDown := false
	physics := engine.PhysicsNone
	engineName := ""
	verbose := false
	slotVertices := ""
	dumpUpdateCache := false

	// Scenario commands collect everything not handled globally.
	var cmdArgs []string

	argStart := 3
	if legacy {
		argStart = 5
	}
	for i := argStart; i < len(args); i++ {
		switch args[i] {
		case "--y-down":
			if i+1 >= len(args) {
				cli.Fail("--y-down: missing argument")
			}
			yDown = cli.ParseBoolFlag(args[i+1])
			i++
		case "--engine":
			if i+1 >= len(args) {
				cli.Fail("--engine: missing argument")
			}
			engineName = args[i+1]
			i++
		case "--verbose":
			verbose = true
		case "--physics":
			if i+1 >= len(args) {
				cli.Fail("--physics: missing argument")
			}
			if legacy {
				mode, ok := engine.ParsePhysicsMode(args[i+1])
				if !ok {
					cli.Fail("invalid physics mode: %s", args[i+1])
				}
				physics = mode
			} else {
				cmdArgs = append(cmdArgs, args[i], args[i+1])
			}
			i++
		case "--dump-slot-vertices":
			if i+1 >= len(args) {
				cli.Fail("--dump-slot-vertices: missing argument")
			}
			slotVertices = args[i+1]
			i++
		case "--dump-update-cache":
			dumpUpdateCache = true
		default:
			cmdArgs = append(cmdArgs, args[i])
		}
	}
	if legacy && len(cmdArgs) > 0 {
		cli.Fail("unknown/invalid command: %s", cmdArgs[0])
	}

	cli.SetupLogging(verbose)

	drv, err := cli.OpenDriver(engineName)
	if err != nil {
		cli.Fail("%v", err)
	}

	drv.SetYDown(yDown)
	atlas, err := cli.LoadAtlas(drv, atlasPath)
	if err != nil {
		cli.Fail("%v", err)
	}
	data, err := cli.LoadSkeleton(drv, atlas, skeletonPath)
	if err != nil {
		cli.Fail("%v", err)
	}
	drv.SetYDown(yDown)

	inst, err := drv.NewInstance(data)
	if err != nil {
		cli.Fail("%v", err)
	}
	defer inst.Close()

	meta := snapshot.Meta{YDown: yDown}
	if legacy {
		elapsed, err := scenario.SingleShot{
			Animation: animation,
			Time:      absTime,
			Loop:      true,
			Physics:   physics,
		}.Run(inst)
		if err != nil {
			cli.Fail("%v", err)
		}
		meta.Mode = snapshot.ModeLegacy
		meta.Animation = animation
		meta.Time = elapsed
	} else {
		cmds, err := scenario.Parse(cmdArgs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			usage()
			os.Exit(cli.ExitUsage)
		}
		runner := scenario.NewRunner(inst)
		if err := runner.Run(cmds); err != nil {
			cli.Fail("%v", err)
		}
		meta.Mode = snapshot.ModeScenario
		meta.Animation = scenario.SentinelAnimation
		meta.Time = runner.Elapsed()
	}

	var opts []snapshot.Option
	if slotVertices != "" {
		opts = append(opts, snapshot.WithSlotVertices(slotVertices))
	}
	if dumpUpdateCache {
		opts = append(opts, snapshot.WithUpdateCacheDump())
	}
	doc := snapshot.Capture(inst.Skeleton(), meta, opts...)
	if err := doc.Encode(os.Stdout); err != nil {
		cli.Fail("%v", err)
	}
}

func parseFloat(s string) (float32, error) {
	v, err := strconv.ParseFloat(s, 32)
	return float32(v), err
}
