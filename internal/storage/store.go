package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/ballsim/internal/balls"
	"github.com/san-kum/ballsim/internal/config"
	"github.com/san-kum/ballsim/internal/sim"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
	seriesFile   = "series.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Balls       int                `json:"balls"`
	Diameter    int                `json:"diameter"`
	Field       balls.Rect         `json:"field"`
	Boundary    string             `json:"boundary"`
	Steps       int                `json:"steps"`
	SampleEvery int                `json:"sample_every"`
	StepsTaken  int                `json:"steps_taken"`
	FrameSteps  []int              `json:"frame_steps"`
	EnergyDrift float64            `json:"energy_drift"`
	Metrics     map[string]float64 `json:"metrics"`
}

// Config rebuilds the run configuration from the metadata.
func (m *RunMetadata) Config() *config.Config {
	return &config.Config{
		Name:     m.Name,
		Balls:    m.Balls,
		Diameter: m.Diameter,
		Field: config.FieldConfig{
			Left: m.Field.Left, Top: m.Field.Top, Right: m.Field.Right, Bottom: m.Field.Bottom,
		},
		Boundary:    m.Boundary,
		Seed:        m.Seed,
		Steps:       m.Steps,
		SampleEvery: m.SampleEvery,
		FPS:         config.DefaultFPS,
	}
}

func newRunID(name string) string {
	if name == "" {
		name = "run"
	}
	return fmt.Sprintf("%s_%d_%s", name, time.Now().Unix(), uuid.NewString()[:8])
}

func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	runID := newRunID(cfg.Name)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Name:        cfg.Name,
		Timestamp:   time.Now(),
		Seed:        cfg.Seed,
		Balls:       cfg.Balls,
		Diameter:    cfg.Diameter,
		Field:       cfg.Field.Rect(),
		Boundary:    cfg.Boundary,
		Steps:       cfg.Steps,
		SampleEvery: cfg.SampleEvery,
		StepsTaken:  result.StepsTaken,
		FrameSteps:  frameSteps(result.Frames),
		EnergyDrift: result.EnergyDrift,
		Metrics:     result.Metrics,
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", fmt.Errorf("run %s: %w", runID, err)
	}
	if err := writeFrames(filepath.Join(runDir, framesFile), result.Frames); err != nil {
		return "", fmt.Errorf("run %s: %w", runID, err)
	}
	if err := writeSeries(filepath.Join(runDir, seriesFile), result.Series); err != nil {
		return "", fmt.Errorf("run %s: %w", runID, err)
	}

	return runID, nil
}

func frameSteps(frames []sim.Frame) []int {
	steps := make([]int, len(frames))
	for i, f := range frames {
		steps[i] = f.Step
	}
	return steps
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeCSV(path string, header []string, rows func(w *csv.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := rows(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeFrames(path string, frames []sim.Frame) error {
	header := []string{"step", "ball", "x", "y", "vx", "vy"}
	return writeCSV(path, header, func(w *csv.Writer) error {
		for _, f := range frames {
			step := strconv.Itoa(f.Step)
			for i, b := range f.Balls {
				row := []string{step, strconv.Itoa(i), formatFloat(b.X), formatFloat(b.Y), formatFloat(b.VX), formatFloat(b.VY)}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func writeSeries(path string, series []sim.Sample) error {
	header := []string{"step", "kinetic_energy", "collisions", "wall_contacts"}
	return writeCSV(path, header, func(w *csv.Writer) error {
		for _, smp := range series {
			row := []string{
				strconv.Itoa(smp.Step),
				formatFloat(smp.KineticEnergy),
				strconv.Itoa(smp.Collisions),
				strconv.Itoa(smp.WallContacts),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

// List returns every stored run, oldest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

func (s *Store) readCSV(runID, name string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %s: %w", runID, name, err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[1:], nil
}

// LoadFrames reads the sampled frames back in step order. frames.csv holds
// one row per ball, so the frame list comes from the metadata and frames of
// an empty field load with no balls.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	records, err := s.readCSV(runID, framesFile)
	if err != nil {
		return nil, err
	}

	frames := make([]sim.Frame, 0, len(meta.FrameSteps))
	index := make(map[int]int, len(meta.FrameSteps))
	for _, step := range meta.FrameSteps {
		index[step] = len(frames)
		frames = append(frames, sim.Frame{Step: step})
	}

	for line, rec := range records {
		vals, err := parseRow(rec, 6)
		if err != nil {
			return nil, fmt.Errorf("run %s: %s line %d: %w", runID, framesFile, line+2, err)
		}
		step := int(vals[0])
		i, ok := index[step]
		if !ok {
			i = len(frames)
			index[step] = i
			frames = append(frames, sim.Frame{Step: step})
		}
		f := &frames[i]
		f.Balls = append(f.Balls, balls.Ball{X: vals[2], Y: vals[3], VX: vals[4], VY: vals[5]})
	}
	return frames, nil
}

func (s *Store) LoadSeries(runID string) ([]sim.Sample, error) {
	records, err := s.readCSV(runID, seriesFile)
	if err != nil {
		return nil, err
	}

	series := make([]sim.Sample, 0, len(records))
	for line, rec := range records {
		vals, err := parseRow(rec, 4)
		if err != nil {
			return nil, fmt.Errorf("run %s: %s line %d: %w", runID, seriesFile, line+2, err)
		}
		series = append(series, sim.Sample{
			Step:          int(vals[0]),
			KineticEnergy: vals[1],
			Collisions:    int(vals[2]),
			WallContacts:  int(vals[3]),
		})
	}
	return series, nil
}

func parseRow(rec []string, n int) ([]float64, error) {
	if len(rec) != n {
		return nil, fmt.Errorf("expected %d fields, got %d", n, len(rec))
	}
	vals := make([]float64, n)
	for i, field := range rec {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
