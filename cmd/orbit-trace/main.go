// orbit-trace runs the solar simulation headless on a ticker and prints body
// positions as a table, for checking orbits without a terminal UI.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/lixenwraith/orrery/constant"
	"github.com/lixenwraith/orrery/frame"
	"github.com/lixenwraith/orrery/orbit"
)

var errDone = errors.New("trace complete")

var (
	ticksFlag     = flag.Int("ticks", 360, "Number of ticks to simulate")
	everyFlag     = flag.Int("every", 30, "Print positions every N ticks")
	intervalFlag  = flag.Duration("interval", time.Millisecond, "Ticker interval")
	incrementFlag = flag.Float64("increment", constant.OrbitBaseIncrement, "Orbit base increment per tick")
)

func main() {
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := trace(ctx, os.Stdout, *ticksFlag, *everyFlag, *intervalFlag, *incrementFlag); err != nil {
		fmt.Fprintf(os.Stderr, "orbit-trace: %v\n", err)
		os.Exit(1)
	}
}

// trace drives the simulator from a frame.Ticker and writes one row per body every `every` ticks
func trace(ctx context.Context, out io.Writer, ticks, every int, interval time.Duration, increment float64) error {
	if ticks <= 0 || every <= 0 {
		return fmt.Errorf("ticks and every must be positive")
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "tick\tbody\tx\ty\tz\tangle\trevs\t")

	sim, err := orbit.New(orbit.SolarSystem(), orbit.WithIncrement(increment))
	if err != nil {
		return err
	}

	ticker := frame.NewTicker(interval)
	done := make(chan struct{})
	loop := orbit.NewLoop(sim, ticker, func(time.Time, []string) error {
		if n := sim.Ticks(); n%uint64(every) == 0 {
			for _, b := range sim.Bodies() {
				p := b.Position()
				fmt.Fprintf(tw, "%d\t%s\t%.3f\t%.3f\t%.3f\t%.4f\t%d\t\n",
					n, b.ID, p.X, p.Y, p.Z, b.Angle, b.Revolutions())
			}
		}
		if sim.Ticks() >= uint64(ticks) {
			close(done)
			return errDone
		}
		return nil
	})

	loop.Start()
	ticker.Start(ctx)

	select {
	case <-done:
	case <-ctx.Done():
		loop.Stop()
	}
	ticker.Stop()

	if err := loop.Err(); err != nil && !errors.Is(err, errDone) {
		return err
	}
	return tw.Flush()
}
