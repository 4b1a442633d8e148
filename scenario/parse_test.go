package scenario

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lego290/spine2d/engine"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []Command
	}{
		{
			name: "empty",
			args: nil,
			want: nil,
		},
		{
			name: "set skin",
			args: []string{"--set-skin", "battle"},
			want: []Command{SetSkin{Name: "battle"}},
		},
		{
			name: "clear skin keeps literal none",
			args: []string{"--set-skin", "none"},
			want: []Command{SetSkin{Name: "none"}},
		},
		{
			name: "physics",
			args: []string{"--physics", "update"},
			want: []Command{Physics{Mode: engine.PhysicsUpdate}},
		},
		{
			name: "mix",
			args: []string{"--mix", "walk", "run", "0.2"},
			want: []Command{Mix{From: "walk", To: "run", Duration: 0.2}},
		},
		{
			name: "set and add",
			args: []string{"--set", "0", "walk", "1", "--add", "1", "run", "0", "0.5"},
			want: []Command{
				Set{Track: 0, Animation: "walk", Loop: true},
				Add{Track: 1, Animation: "run", Loop: false, Delay: 0.5},
			},
		},
		{
			name: "empty animations",
			args: []string{"--set-empty", "0", "0.1", "--add-empty", "2", "0.1", "0.3"},
			want: []Command{
				SetEmpty{Track: 0, MixDuration: 0.1},
				AddEmpty{Track: 2, MixDuration: 0.1, Delay: 0.3},
			},
		},
		{
			name: "bool accepts any nonzero integer",
			args: []string{"--set", "0", "walk", "2"},
			want: []Command{Set{Track: 0, Animation: "walk", Loop: true}},
		},
		{
			name: "entry commands",
			args: []string{
				"--entry-alpha", "0.5",
				"--entry-event-threshold", "0.1",
				"--entry-alpha-attachment-threshold", "0.2",
				"--entry-mix-attachment-threshold", "0.3",
				"--entry-mix-draw-order-threshold", "0.4",
				"--entry-hold-previous", "1",
				"--entry-mix-blend", "add",
				"--entry-reverse", "1",
				"--entry-shortest-rotation", "0",
				"--entry-reset-rotation-directions",
			},
			want: []Command{
				EntryAlpha{Alpha: 0.5},
				EntryEventThreshold{Threshold: 0.1},
				EntryAlphaAttachmentThreshold{Threshold: 0.2},
				EntryMixAttachmentThreshold{Threshold: 0.3},
				EntryMixDrawOrderThreshold{Threshold: 0.4},
				EntryHoldPrevious{Hold: true},
				EntryMixBlend{Blend: engine.MixBlendAdd},
				EntryReverse{Reverse: true},
				EntryShortestRotation{Shortest: false},
				EntryResetRotationDirections{},
			},
		},
		{
			name: "steps",
			args: []string{"--step", "0.25", "--step", "0.25"},
			want: []Command{Step{Delta: 0.25}, Step{Delta: 0.25}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v): %v", tt.args, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%v) = %#v, want %#v", tt.args, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{
			name:    "unknown command",
			args:    []string{"--frobnicate"},
			wantErr: "unknown/invalid command: --frobnicate",
		},
		{
			name:    "missing argument",
			args:    []string{"--step"},
			wantErr: "--step: missing argument",
		},
		{
			name:    "missing trailing argument",
			args:    []string{"--mix", "walk", "run"},
			wantErr: "--mix: missing argument",
		},
		{
			name:    "bad number",
			args:    []string{"--step", "fast"},
			wantErr: `--step: invalid number "fast"`,
		},
		{
			name:    "bad track",
			args:    []string{"--set", "zero", "walk", "1"},
			wantErr: `--set: invalid integer "zero"`,
		},
		{
			name:    "bad bool",
			args:    []string{"--entry-reverse", "yes"},
			wantErr: `--entry-reverse: invalid integer "yes"`,
		},
		{
			name:    "bad physics mode",
			args:    []string{"--physics", "always"},
			wantErr: "invalid physics mode: always",
		},
		{
			name:    "bad mix blend",
			args:    []string{"--entry-mix-blend", "overwrite"},
			wantErr: "invalid mix blend: overwrite",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.args)
			if err == nil {
				t.Fatalf("Parse(%v): expected error", tt.args)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Parse(%v) error = %q, want containing %q", tt.args, err, tt.wantErr)
			}
		})
	}
}
