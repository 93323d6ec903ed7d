package storage

import (
	"encoding/json"
	"os"

	"github.com/san-kum/levy/internal/fractal"
)

// ExportData is a self-contained JSON form of a stored run.
type ExportData struct {
	RunMetadata
	Points [][2]float64 `json:"points"`
}

// ExportJSON writes a run's metadata and points into one JSON file.
func (s *Store) ExportJSON(runID, path string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	points, err := s.LoadPoints(runID)
	if err != nil {
		return err
	}
	return ExportJSON(path, meta, points)
}

func ExportJSON(path string, meta *RunMetadata, points fractal.PointSequence) error {
	data := ExportData{
		RunMetadata: *meta,
		Points:      make([][2]float64, len(points)),
	}
	for i, p := range points {
		data.Points[i] = [2]float64{p.X, p.Y}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	return file.Close()
}
