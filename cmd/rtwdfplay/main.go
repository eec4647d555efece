// Command rtwdfplay drives one of the example circuit trees sample by
// sample and plays the result through the audio backend — a thin
// consumer of the rtwdf engine, never part of its import graph (spec.md
// §1 "audio I/O host is out of scope").
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	rtwdf "github.com/hollow-road/rtwdf-go"
	"github.com/hollow-road/rtwdf-go/internal/audio"
	"github.com/hollow-road/rtwdf-go/internal/circuit"
	"github.com/hollow-road/rtwdf-go/internal/effects"
	"github.com/hollow-road/rtwdf-go/internal/lfo"
)

func main() {
	var (
		sampleRate  = flag.Int("sample-rate", 48000, "output sample rate")
		circuitName = flag.String("circuit", "diode", "circuit: divider|rc|atten|diode")
		freq        = flag.Float64("freq", 220.0, "test tone frequency, Hz")
		amp         = flag.Float64("amp", 1.0, "test tone amplitude, V")
		duration    = flag.Duration("duration", 3*time.Second, "how long to play")
		sweepParam  = flag.Int("sweep-param", -1, "parameter id to sweep with the LFO (-1 disables)")
		sweepRateHz = flag.Float64("sweep-rate", 0.25, "LFO sweep rate, Hz")
		sweepDepth  = flag.Float64("sweep-depth", 0, "LFO sweep depth, same units as the swept parameter")
		distortion  = flag.Bool("distortion", false, "apply a post-processing distortion effect")
	)
	flag.Parse()

	tree, err := buildCircuit(*circuitName)
	if err != nil {
		log.Fatal(err)
	}
	tree.Init()
	if err := tree.SetSampleRate(float64(*sampleRate)); err != nil {
		log.Fatal(err)
	}
	if err := tree.Adapt(); err != nil {
		log.Fatal(err)
	}

	var sweep lfo.Sweep
	if *sweepParam >= 0 {
		sweep.Set(*sweepDepth, *sweepRateHz, float64(*sampleRate), lfo.WaveTriangle)
	}

	var chain *effects.Chain
	if *distortion {
		chain = effects.NewChain(effects.NewDistortion(*sampleRate, 2.0, 0.8, 0))
	}

	src := &circuitSource{
		tree:        tree,
		fs:          float64(*sampleRate),
		freq:        *freq,
		amp:         *amp,
		sweep:       &sweep,
		sweepParam:  *sweepParam,
		chain:       chain,
		totalFrames: int(duration.Seconds() * float64(*sampleRate)),
	}

	player, err := audio.NewPlayer(*sampleRate, src)
	if err != nil {
		log.Fatal(err)
	}
	player.Play()
	for player.IsPlaying() {
		time.Sleep(50 * time.Millisecond)
	}
	fmt.Println("done")
}

func buildCircuit(name string) (*rtwdf.Tree, error) {
	switch strings.ToLower(name) {
	case "divider":
		return circuit.ResistiveDivider(1000, 1000), nil
	case "rc":
		return circuit.RCLowpass(1000, 1e-6), nil
	case "atten":
		return circuit.SwitchableAttenuator(600, 1000), nil
	case "diode":
		return circuit.DiodeClipper(1000, 1e-6), nil
	default:
		return nil, fmt.Errorf("invalid -circuit %q (expected divider|rc|atten|diode)", name)
	}
}

// circuitSource drives tree one sample at a time from a sine test tone,
// implementing audio.SampleSource/FinishingSource.
type circuitSource struct {
	tree        *rtwdf.Tree
	fs          float64
	freq        float64
	amp         float64
	sweep       *lfo.Sweep
	sweepParam  int
	chain       *effects.Chain
	n           int
	totalFrames int
}

func (s *circuitSource) Process(dst []float32) {
	for i := 0; i < len(dst); i += 2 {
		if s.sweepParam >= 0 && s.sweep.Active() {
			s.tree.SetParam(s.sweepParam, s.sweep.Sample())
		}
		v := s.amp * math.Sin(2*math.Pi*s.freq*float64(s.n)/s.fs)
		s.tree.SetInput(v)
		if err := s.tree.Cycle(); err != nil {
			log.Fatalf("rtwdfplay: cycle: %v", err)
		}
		out := float32(s.tree.GetOutput())
		l, r := out, out
		if s.chain != nil {
			l, r = s.chain.Process(l, r)
		}
		dst[i] = l
		dst[i+1] = r
		s.n++
	}
}

func (s *circuitSource) Finished() bool {
	return s.n >= s.totalFrames
}
