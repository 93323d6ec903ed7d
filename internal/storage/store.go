package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/levy/internal/fractal"
)

const (
	metadataFile = "metadata.json"
	pointsFile   = "points.csv"
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

func (s *Store) Dir() string { return s.baseDir }

// Run is a generated point set with the parameters that produced it.
type Run struct {
	Method  string
	Seed    *int64
	Params  map[string]any
	Points  fractal.PointSequence
	Results map[string]fractal.FitResult
}

type RunMetadata struct {
	ID        string                       `json:"id"`
	Method    string                       `json:"method"`
	Timestamp time.Time                    `json:"timestamp"`
	Seed      *int64                       `json:"seed,omitempty"`
	Params    map[string]any               `json:"params,omitempty"`
	NumPoints int                          `json:"num_points"`
	Results   map[string]fractal.FitResult `json:"results,omitempty"`
}

func (s *Store) Save(run Run) (string, error) {
	if err := s.Init(); err != nil {
		return "", err
	}
	now := time.Now()
	runID, runDir, err := s.newRunDir(run.Method, now)
	if err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Method:    run.Method,
		Timestamp: now,
		Seed:      run.Seed,
		Params:    run.Params,
		NumPoints: len(run.Points),
		Results:   run.Results,
	}
	if err := writeMetadata(filepath.Join(runDir, metadataFile), &meta); err != nil {
		return "", err
	}

	f, err := os.Create(filepath.Join(runDir, pointsFile))
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WritePoints(f, run.Points); err != nil {
		return "", err
	}
	return runID, f.Close()
}

// newRunDir creates a fresh directory named after method and the
// timestamp, adding a counter on collision.
func (s *Store) newRunDir(method string, now time.Time) (string, string, error) {
	base := fmt.Sprintf("%s_%d", method, now.Unix())
	for i := 0; ; i++ {
		runID := base
		if i > 0 {
			runID = fmt.Sprintf("%s_%d", base, i)
		}
		runDir := filepath.Join(s.baseDir, runID)
		err := os.Mkdir(runDir, 0755)
		if err == nil {
			return runID, runDir, nil
		}
		if !errors.Is(err, os.ErrExist) {
			return "", "", err
		}
	}
}

// List returns the metadata of every readable run, oldest first.
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
		meta, err := readMetadata(filepath.Join(s.baseDir, entry.Name(), metadataFile))
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	return readMetadata(filepath.Join(s.baseDir, runID, metadataFile))
}

func (s *Store) LoadPoints(runID string) (fractal.PointSequence, error) {
	f, err := os.Open(filepath.Join(s.baseDir, runID, pointsFile))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadPoints(f)
}

// SaveResult records a fit under name in the run's metadata, replacing any
// previous fit with the same name.
func (s *Store) SaveResult(runID, name string, fit fractal.FitResult) error {
	path := filepath.Join(s.baseDir, runID, metadataFile)
	meta, err := readMetadata(path)
	if err != nil {
		return err
	}
	if meta.Results == nil {
		meta.Results = make(map[string]fractal.FitResult)
	}
	meta.Results[name] = fit
	return writeMetadata(path, meta)
}

func readMetadata(path string) (*RunMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &meta, nil
}

func writeMetadata(path string, meta *RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}
	return f.Close()
}

// WritePoints writes an "x,y" header followed by one row per point. Values
// are formatted with the shortest representation that round-trips.
func WritePoints(w io.Writer, points fractal.PointSequence) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadPoints parses the format written by WritePoints.
func ReadPoints(r io.Reader) (fractal.PointSequence, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 2

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return fractal.PointSequence{}, nil
	}

	points := make(fractal.PointSequence, 0, len(records)-1)
	for i, record := range records[1:] {
		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		y, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		points = append(points, fractal.Pt(x, y))
	}
	return points, nil
}
