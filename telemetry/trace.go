// Package telemetry records per-tick pose traces as CSV for offline
// inspection of a simulation run.
package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"

	"github.com/milk9111/platformer/sim"
)

// Row is one tick of a trace.
type Row struct {
	Tick     int     `csv:"tick"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	VX       float64 `csv:"vx"`
	VY       float64 `csv:"vy"`
	OnGround bool    `csv:"on_ground"`
	Facing   int     `csv:"facing"`
	CamX     float64 `csv:"cam_x"`
}

// Recorder appends rows to a CSV stream, writing the header once.
type Recorder struct {
	w             io.Writer
	headerWritten bool
}

func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w}
}

// Record writes one tick's resolved pose and camera offset.
func (r *Recorder) Record(tick int, a sim.Actor, camX float64) error {
	rows := []Row{{
		Tick:     tick,
		X:        a.X,
		Y:        a.Y,
		VX:       a.VX,
		VY:       a.VY,
		OnGround: a.OnGround,
		Facing:   a.Facing,
		CamX:     camX,
	}}

	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.w); err != nil {
			return fmt.Errorf("telemetry: write trace: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, r.w); err != nil {
		return fmt.Errorf("telemetry: write trace: %w", err)
	}
	return nil
}
