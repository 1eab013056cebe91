package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/ballsim/internal/sim"
)

// SeriesCSV writes per-step samples with a header row.
func SeriesCSV(w io.Writer, series []sim.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"step", "kinetic_energy", "collisions", "wall_contacts"}); err != nil {
		return err
	}
	for _, s := range series {
		rec := []string{
			strconv.Itoa(s.Step),
			strconv.FormatFloat(s.KineticEnergy, 'g', -1, 64),
			strconv.Itoa(s.Collisions),
			strconv.Itoa(s.WallContacts),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FrameCSV writes one row per ball of a single frame.
func FrameCSV(w io.Writer, frame sim.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ball", "x", "y", "vx", "vy"}); err != nil {
		return err
	}
	for i, b := range frame.Balls {
		rec := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(b.X, 'g', -1, 64),
			strconv.FormatFloat(b.Y, 'g', -1, 64),
			strconv.FormatFloat(b.VX, 'g', -1, 64),
			strconv.FormatFloat(b.VY, 'g', -1, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
