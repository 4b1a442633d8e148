package scenario

import (
	"fmt"
	"strconv"

	"github.com/lego290/spine2d/engine"
)

// Parse converts a textual argument list into commands. Arguments are
// consumed strictly in order; the first unknown or malformed argument aborts
// the parse.
func Parse(args []string) ([]Command, error) {
	p := parser{args: args}
	var cmds []Command
	for !p.done() {
		cmd, err := p.command()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

type parser struct {
	args []string
	pos  int
}

func (p *parser) done() bool { return p.pos >= len(p.args) }

func (p *parser) command() (Command, error) {
	arg := p.args[p.pos]
	p.pos++
	switch arg {
	case "--set-skin":
		name, err := p.str(arg)
		if err != nil {
			return nil, err
		}
		return SetSkin{Name: name}, nil
	case "--physics":
		s, err := p.str(arg)
		if err != nil {
			return nil, err
		}
		mode, ok := engine.ParsePhysicsMode(s)
		if !ok {
			return nil, fmt.Errorf("invalid physics mode: %s", s)
		}
		return Physics{Mode: mode}, nil
	case "--mix":
		from, err := p.str(arg)
		if err != nil {
			return nil, err
		}
		to, err := p.str(arg)
		if err != nil {
			return nil, err
		}
		duration, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return Mix{From: from, To: to, Duration: duration}, nil
	case "--set":
		track, err := p.int(arg)
		if err != nil {
			return nil, err
		}
		name, err := p.str(arg)
		if err != nil {
			return nil, err
		}
		loop, err := p.bool(arg)
		if err != nil {
			return nil, err
		}
		return Set{Track: track, Animation: name, Loop: loop}, nil
	case "--add":
		track, err := p.int(arg)
		if err != nil {
			return nil, err
		}
		name, err := p.str(arg)
		if err != nil {
			return nil, err
		}
		loop, err := p.bool(arg)
		if err != nil {
			return nil, err
		}
		delay, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return Add{Track: track, Animation: name, Loop: loop, Delay: delay}, nil
	case "--set-empty":
		track, err := p.int(arg)
		if err != nil {
			return nil, err
		}
		mix, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return SetEmpty{Track: track, MixDuration: mix}, nil
	case "--add-empty":
		track, err := p.int(arg)
		if err != nil {
			return nil, err
		}
		mix, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		delay, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return AddEmpty{Track: track, MixDuration: mix, Delay: delay}, nil
	case "--entry-alpha":
		v, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return EntryAlpha{Alpha: v}, nil
	case "--entry-event-threshold":
		v, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return EntryEventThreshold{Threshold: v}, nil
	case "--entry-alpha-attachment-threshold":
		v, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return EntryAlphaAttachmentThreshold{Threshold: v}, nil
	case "--entry-mix-attachment-threshold":
		v, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return EntryMixAttachmentThreshold{Threshold: v}, nil
	case "--entry-mix-draw-order-threshold":
		v, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return EntryMixDrawOrderThreshold{Threshold: v}, nil
	case "--entry-hold-previous":
		v, err := p.bool(arg)
		if err != nil {
			return nil, err
		}
		return EntryHoldPrevious{Hold: v}, nil
	case "--entry-mix-blend":
		s, err := p.str(arg)
		if err != nil {
			return nil, err
		}
		blend, ok := engine.ParseMixBlend(s)
		if !ok {
			return nil, fmt.Errorf("invalid mix blend: %s", s)
		}
		return EntryMixBlend{Blend: blend}, nil
	case "--entry-reverse":
		v, err := p.bool(arg)
		if err != nil {
			return nil, err
		}
		return EntryReverse{Reverse: v}, nil
	case "--entry-shortest-rotation":
		v, err := p.bool(arg)
		if err != nil {
			return nil, err
		}
		return EntryShortestRotation{Shortest: v}, nil
	case "--entry-reset-rotation-directions":
		return EntryResetRotationDirections{}, nil
	case "--step":
		dt, err := p.float(arg)
		if err != nil {
			return nil, err
		}
		return Step{Delta: dt}, nil
	}
	return nil, fmt.Errorf("unknown/invalid command: %s", arg)
}

func (p *parser) str(flag string) (string, error) {
	if p.done() {
		return "", fmt.Errorf("%s: missing argument", flag)
	}
	s := p.args[p.pos]
	p.pos++
	return s, nil
}

func (p *parser) float(flag string) (float32, error) {
	s, err := p.str(flag)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid number %q", flag, s)
	}
	return float32(v), nil
}

func (p *parser) int(flag string) (int, error) {
	s, err := p.str(flag)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", flag, s)
	}
	return v, nil
}

// bool follows the tools' 0|1 convention: any nonzero integer is true.
func (p *parser) bool(flag string) (bool, error) {
	v, err := p.int(flag)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
