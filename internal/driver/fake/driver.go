package fake

import (
	"fmt"
	"io"
	"os"

	"github.com/coreman2200/hangarbay/internal/render"
)

// Driver prints a compact summary of each frame (call count and the first
// back-wall panel), useful for headless runs.
type Driver struct {
	Out   io.Writer
	Every int // print every Nth frame, 0 or 1 prints all
	Count int
}

func New(out io.Writer, every int) *Driver {
	if out == nil {
		out = os.Stdout
	}
	return &Driver{Out: out, Every: every}
}

func (d *Driver) Write(f *render.Frame) error {
	d.Count++
	if d.Every > 1 && d.Count%d.Every != 0 {
		return nil
	}
	out := d.Out
	if out == nil {
		out = os.Stdout
	}
	panels := 0
	var first *render.DrawCall
	for i := range f.Calls {
		c := &f.Calls[i]
		// moving panels face back down the hangar
		if c.Model == "cwall" && c.Basis.Forward.X() < 0 {
			if first == nil {
				first = c
			}
			panels++
		}
	}
	_, err := fmt.Fprintf(out, "[frame %04d] dt=%.3f calls=%d skipped=%d panels=%d", f.ID, f.DeltaTime, len(f.Calls), f.Skipped, panels)
	if err != nil {
		return err
	}
	if first != nil {
		p := first.Position
		_, err = fmt.Fprintf(out, " first=(%.2f,%.2f,%.2f)", p.X(), p.Y(), p.Z())
		if err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(out)
	return err
}
