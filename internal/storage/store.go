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
	"github.com/san-kum/balancescale/internal/dynamo"
)

var csvHeader = []string{"time", "angle", "omega", "torque", "left", "right", "state"}

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
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	Mode       string             `json:"mode"`
	Timestamp  time.Time          `json:"timestamp"`
	Seed       int64              `json:"seed"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Integrator string             `json:"integrator"`
	Classifier string             `json:"classifier"`
	Steps      int                `json:"steps"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Save writes the run under a fresh ID. ID, Timestamp, Steps and Metrics
// of meta are filled in from the result.
func (s *Store) Save(meta RunMetadata, result *dynamo.Result) (string, error) {
	meta.ID = uuid.NewString()
	meta.Timestamp = time.Now()
	meta.Steps = result.StepsTaken
	meta.Metrics = result.Metrics

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(csvHeader); err != nil {
		return "", err
	}
	for i, x := range result.Samples {
		state := ""
		if i < len(result.States) {
			state = result.States[i]
		}
		row := []string{
			strconv.FormatFloat(x.Time, 'f', 6, 64),
			strconv.FormatFloat(x.Angle, 'f', 6, 64),
			strconv.FormatFloat(x.AngularVelocity, 'f', 6, 64),
			strconv.FormatFloat(x.Torque, 'f', 6, 64),
			strconv.FormatFloat(x.LeftTotal, 'f', 6, 64),
			strconv.FormatFloat(x.RightTotal, 'f', 6, 64),
			state,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return meta.ID, nil
}

// List returns every readable run, newest first.
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
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// StatesPath is where the per-tick trace of runID lives.
func (s *Store) StatesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "states.csv")
}

// LoadSamples reads the trace back along with the classifier label of
// every tick.
func (s *Store) LoadSamples(runID string) ([]dynamo.Sample, []string, error) {
	file, err := os.Open(s.StatesPath(runID))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return []dynamo.Sample{}, []string{}, nil
	}

	samples := make([]dynamo.Sample, 0, len(records)-1)
	states := make([]string, 0, len(records)-1)
	for i, record := range records[1:] {
		if len(record) < len(csvHeader) {
			return nil, nil, fmt.Errorf("%s line %d: want %d fields, got %d", runID, i+2, len(csvHeader), len(record))
		}
		var vals [6]float64
		for j := range vals {
			v, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s line %d: %w", runID, i+2, err)
			}
			vals[j] = v
		}
		samples = append(samples, dynamo.Sample{
			Time:            vals[0],
			Angle:           vals[1],
			AngularVelocity: vals[2],
			Torque:          vals[3],
			LeftTotal:       vals[4],
			RightTotal:      vals[5],
		})
		states = append(states, record[6])
	}

	return samples, states, nil
}
