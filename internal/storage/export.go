package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/vacuumsim/internal/sim"
)

type ExportData struct {
	Run     *RunMetadata `json:"run"`
	Samples []sim.Sample `json:"samples"`
}

// ExportJSON writes a run and its samples as one indented document.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []sim.Sample) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(ExportData{Run: meta, Samples: samples})
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
func formatInt(v int64) string     { return strconv.FormatInt(v, 10) }

// WriteCSV writes samples under the standard header.
func WriteCSV(w io.Writer, samples []sim.Sample) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			formatInt(s.Tick),
			formatFloat(s.Time),
			formatFloat(s.Volume),
			formatFloat(s.Temperature),
			formatFloat(s.Entropy),
			formatFloat(s.TotalEnergy),
			formatFloat(s.CurrentEnergy),
			formatFloat(s.RadiationDensity),
			formatInt(s.Population),
			formatInt(int64(s.ActiveSpecies)),
			formatInt(s.Created),
			formatInt(s.DecayedNatural),
			formatInt(s.DecayedInteraction),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
