// spine-render-oracle poses a skeleton the same way spine-pose-oracle does,
// then prints one JSON document with the frame's draw batches: positions,
// UVs, packed colors reconciled with the atlas's premultiplied-alpha
// convention, and triangle indices.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lego290/spine2d/engine"
	"github.com/lego290/spine2d/internal/cli"
	"github.com/lego290/spine2d/render"
	"github.com/lego290/spine2d/scenario"
)

func usage() {
	fmt.Fprint(os.Stderr, "Usage:\n"+
		"  spine-render-oracle <atlas.atlas> <skeleton.(json|skel)> --anim <name> [--time <t>] [--loop 0|1] [--skin <name|none>] [--y-down 0|1] [--physics none|reset|update|pose]\n"+
		"  spine-render-oracle <atlas.atlas> <skeleton.(json|skel)> [--y-down 0|1] <commands...>\n"+
		"Scenario commands match spine-pose-oracle.\n"+
		"Global options:\n"+
		"  --engine <name>   engine driver to use (default: the sole registered driver)\n"+
		"  --verbose         log interpreter trace to stderr\n")
}

func main() {
	args := os.Args
	if len(args) < 4 {
		usage()
		os.Exit(cli.ExitUsage)
	}

	atlasPath := args[1]
	skeletonPath := args[2]

	// Mode selection is structural: any --anim argument means legacy mode.
	legacy := false
	for _, a := range args[3:] {
		if a == "--anim" {
			legacy = true
			break
		}
	}

	var (
		anim       string
		absTime    float32
		loop       = true
		skin       string
		hasSkin    bool
		yDown      bool
		physics    = engine.PhysicsNone
		engineName string
		verbose    bool
		cmdArgs    []string
	)

	need := func(i int, flag string) string {
		if i+1 >= len(args) {
			cli.Fail("%s: missing argument", flag)
		}
		return args[i+1]
	}

	for i := 3; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--y-down":
			yDown = cli.ParseBoolFlag(need(i, arg))
			i++
		case "--engine":
			engineName = need(i, arg)
			i++
		case "--verbose":
			verbose = true
		case "--anim":
			anim = need(i, arg)
			i++
		case "--time":
			if !legacy {
				cmdArgs = append(cmdArgs, arg)
				continue
			}
			v, err := strconv.ParseFloat(need(i, arg), 32)
			if err != nil {
				cli.Fail("--time: invalid number %q", args[i+1])
			}
			absTime = float32(v)
			i++
		case "--loop":
			if !legacy {
				cmdArgs = append(cmdArgs, arg)
				continue
			}
			loop = cli.ParseBoolFlag(need(i, arg))
			i++
		case "--skin":
			if !legacy {
				cmdArgs = append(cmdArgs, arg)
				continue
			}
			skin = need(i, arg)
			hasSkin = true
			i++
		case "--physics":
			mode, ok := engine.ParsePhysicsMode(need(i, arg))
			if !ok {
				cli.Fail("invalid physics mode: %s", args[i+1])
			}
			if legacy {
				physics = mode
			} else {
				cmdArgs = append(cmdArgs, arg, args[i+1])
			}
			i++
		default:
			if legacy {
				fmt.Fprintf(os.Stderr, "unknown arg: %s\n", arg)
				usage()
				os.Exit(cli.ExitUsage)
			}
			cmdArgs = append(cmdArgs, arg)
		}
	}

	if legacy && anim == "" {
		fmt.Fprint(os.Stderr, "missing required --anim <name>\n")
		usage()
		os.Exit(cli.ExitUsage)
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

	meta := render.Meta{YDown: yDown}
	if legacy {
		single := scenario.SingleShot{
			Animation: anim,
			Time:      absTime,
			Loop:      loop,
			Skin:      skin,
			HasSkin:   hasSkin,
			Physics:   physics,
		}
		elapsed, err := single.Run(inst)
		if err != nil {
			cli.Fail("%v", err)
		}
		meta.Mode = render.ModeLegacy
		meta.Anim = anim
		meta.Time = elapsed
		meta.Physics = physics
		if hasSkin {
			meta.Skin = &skin
		}
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
		meta.Mode = render.ModeScenario
		meta.Anim = scenario.SentinelAnimation
		meta.Time = runner.Elapsed()
		meta.Physics = runner.PhysicsMode()
	}

	doc := render.Capture(inst, atlas, meta)
	if err := doc.Encode(os.Stdout); err != nil {
		cli.Fail("%v", err)
	}
}
