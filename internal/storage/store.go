package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/vacuumsim/internal/sim"
)

var (
	ErrRunNotFound = errors.New("storage: run not found")
	ErrAmbiguousID = errors.New("storage: run id prefix is ambiguous")
)

const (
	metadataFile = "metadata.json"
	samplesFile  = "samples.csv"
)

type Store struct {
	baseDir string
	logger  *slog.Logger
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir, logger: slog.Default()}
}

func (s *Store) WithLogger(l *slog.Logger) *Store {
	s.logger = l
	return s
}

func (s *Store) Dir() string { return s.baseDir }

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunParams are the inputs of a run worth keeping next to its output.
type RunParams struct {
	Name                   string  `json:"name,omitempty"`
	Mode                   string  `json:"mode"`
	Seed                   int64   `json:"seed"`
	Dt                     float64 `json:"dt"`
	Multiplier             int64   `json:"multiplier"`
	Ticks                  int     `json:"ticks"`
	InteractionProbability float64 `json:"interaction_probability"`
	Expansion              string  `json:"expansion"`
	Catalog                string  `json:"catalog,omitempty"`
}

type RunMetadata struct {
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Params      RunParams          `json:"params"`
	StepsTaken  int                `json:"steps_taken"`
	Samples     int                `json:"samples"`
	Metrics     map[string]float64 `json:"metrics"`
	FinalCounts map[string]int64   `json:"final_counts"`
	Final       *sim.Sample        `json:"final,omitempty"`
}

var csvHeader = []string{
	"tick", "time", "volume", "temperature", "entropy", "total_energy",
	"current_energy", "radiation_density", "population", "active_species",
	"created", "decayed_natural", "decayed_interaction",
}

// Save writes a run directory named by a fresh uuid and returns its
// metadata. A failed save leaves no run directory behind.
func (s *Store) Save(params RunParams, result *sim.Result) (_ *RunMetadata, err error) {
	runID := uuid.New().String()
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rmErr := os.RemoveAll(runDir); rmErr != nil {
				s.logger.Warn("[STORE] cleanup failed", "id", runID, "error", rmErr)
			}
		}
	}()

	meta := &RunMetadata{
		ID:         runID,
		Timestamp:  time.Now().UTC(),
		Params:     params,
		StepsTaken: result.StepsTaken,
		Samples:    len(result.Samples),
		Metrics:    result.Metrics,
	}
	if result.Final != nil {
		meta.FinalCounts = result.Final.Counts()
		last := sim.NewSample(result.Final)
		meta.Final = &last
	}

	if err := writeJSON(filepath.Join(runDir, metadataFile), meta); err != nil {
		return nil, fmt.Errorf("storage: write metadata: %w", err)
	}

	csvFile, err := os.Create(filepath.Join(runDir, samplesFile))
	if err != nil {
		return nil, err
	}
	if err := WriteCSV(csvFile, result.Samples); err != nil {
		csvFile.Close()
		return nil, fmt.Errorf("storage: write samples: %w", err)
	}
	if err := csvFile.Close(); err != nil {
		return nil, fmt.Errorf("storage: close samples: %w", err)
	}

	s.logger.Info("[STORE] saved run", "id", runID, "steps", result.StepsTaken, "samples", len(result.Samples))
	return meta, nil
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// List returns stored runs, newest first. Directories without readable
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

		meta, err := s.readMeta(entry.Name())
		if err != nil {
			s.logger.Debug("[STORE] skipping directory", "dir", entry.Name(), "error", err)
			continue
		}

		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) readMeta(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// Resolve expands a unique id prefix to a full run id.
func (s *Store) Resolve(prefix string) (string, error) {
	if _, err := os.Stat(filepath.Join(s.baseDir, prefix, metadataFile)); err == nil {
		return prefix, nil
	}

	entries, err := os.ReadDir(s.baseDir)
	if err != nil && !os.IsNotExist(err) {
		return "", err
	}

	var match string
	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), prefix) {
			continue
		}
		if match != "" {
			return "", fmt.Errorf("%w: %s", ErrAmbiguousID, prefix)
		}
		match = entry.Name()
	}
	if match == "" {
		return "", fmt.Errorf("%w: %s", ErrRunNotFound, prefix)
	}
	return match, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	id, err := s.Resolve(runID)
	if err != nil {
		return nil, err
	}
	return s.readMeta(id)
}

func (s *Store) LoadSamples(runID string) ([]sim.Sample, error) {
	id, err := s.Resolve(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, id, samplesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []sim.Sample{}, nil
	}

	col := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		col[name] = i
	}
	float := func(rec []string, name string) float64 {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return 0
		}
		v, _ := strconv.ParseFloat(rec[i], 64)
		return v
	}
	integer := func(rec []string, name string) int64 {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return 0
		}
		v, _ := strconv.ParseInt(rec[i], 10, 64)
		return v
	}

	samples := make([]sim.Sample, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) == 0 {
			continue
		}
		samples = append(samples, sim.Sample{
			Tick:               integer(rec, "tick"),
			Time:               float(rec, "time"),
			Volume:             float(rec, "volume"),
			Temperature:        float(rec, "temperature"),
			Entropy:            float(rec, "entropy"),
			TotalEnergy:        float(rec, "total_energy"),
			CurrentEnergy:      float(rec, "current_energy"),
			RadiationDensity:   float(rec, "radiation_density"),
			Population:         integer(rec, "population"),
			ActiveSpecies:      int(integer(rec, "active_species")),
			Created:            integer(rec, "created"),
			DecayedNatural:     integer(rec, "decayed_natural"),
			DecayedInteraction: integer(rec, "decayed_interaction"),
		})
	}

	return samples, nil
}

// SamplesPath returns the csv file of a stored run.
func (s *Store) SamplesPath(runID string) (string, error) {
	id, err := s.Resolve(runID)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.baseDir, id, samplesFile), nil
}
