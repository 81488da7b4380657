package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/ballcatch/internal/config"
	"github.com/vovakirdan/ballcatch/internal/core"
	"github.com/vovakirdan/ballcatch/internal/games/catch"
)

func TestParseScript(t *testing.T) {
	frames, err := parseScript("e.lrcx")
	if err != nil {
		t.Fatalf("parseScript() failed: %v", err)
	}
	want := []core.Action{core.ActionConfirm, core.ActionNone, core.ActionLeft, core.ActionRight, core.ActionCenter, core.ActionBack}
	if len(frames) != len(want) {
		t.Fatalf("got %d frames, expected %d", len(frames), len(want))
	}
	for i, a := range want {
		if a == core.ActionNone {
			if len(frames[i].Actions) != 0 {
				t.Errorf("frame %d = %v, expected idle", i, frames[i].Actions)
			}
			continue
		}
		if !frames[i].Has(a) {
			t.Errorf("frame %d = %v, expected %v", i, frames[i].Actions, a)
		}
	}

	if _, err := parseScript("e?"); err == nil {
		t.Error("expected error for unknown input")
	}
}

func runScript(t *testing.T, script string, ticks int) simulation {
	t.Helper()
	frames, err := parseScript(script)
	if err != nil {
		t.Fatal(err)
	}
	game := catch.NewWithConfig(config.DefaultCatchConfig(), nil)
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99}
	return simulate(game, rc, frames, ticks)
}

func TestSimulateIdleStaysReady(t *testing.T) {
	res := runScript(t, "", 120)
	if res.Mode != catch.ModeReady || res.Ticks != 120 || res.Quit {
		t.Errorf("result = %+v, expected 120 ready ticks", res)
	}
	if res.Balls != 1 {
		t.Errorf("Balls = %d, expected the template ball", res.Balls)
	}
}

func TestSimulateStopsOnQuit(t *testing.T) {
	// enter, release, escape (pause), release, escape (leave)
	res := runScript(t, "e.x.x", 1000)
	if !res.Quit {
		t.Fatalf("result = %+v, expected quit", res)
	}
	if res.Ticks != 5 {
		t.Errorf("Ticks = %d, expected 5", res.Ticks)
	}
	if res.Mode != catch.ModePausing {
		t.Errorf("Mode = %v, expected pausing", res.Mode)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	a := runScript(t, "e....l......r....c", 2000)
	b := runScript(t, "e....l......r....c", 2000)
	if a != b {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
	if a.Stats.Dispatches == 0 {
		t.Error("no dispatches recorded")
	}
}

func TestPrintSimulation(t *testing.T) {
	var buf bytes.Buffer
	printSimulation(&buf, simulation{Ticks: 10, Mode: catch.ModeGameOver, Score: 3})
	out := buf.String()
	for _, want := range []string{"ticks:      10", "mode:       game_over", "score:      3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "error:") {
		t.Error("error line printed without an error")
	}
}
