package telemetry

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/courtship/config"
)

// AgentRecord is one row of the final agent table.
type AgentRecord struct {
	Population      string  `csv:"population"`
	Index           int     `csv:"index"`
	Gender          string  `csv:"gender"`
	X               float64 `csv:"x"`
	Y               float64 `csv:"y"`
	Status          string  `csv:"status"`
	MetAtUniversity bool    `csv:"met_at_university"`
}

// OutputManager handles run output with CSV logging.
type OutputManager struct {
	dir          string
	historyFile  *os.File
	perfFile     *os.File
	bookmarkFile *os.File

	historyHeaderWritten  bool
	perfHeaderWritten     bool
	bookmarkHeaderWritten bool
}

// NewOutputManager creates a new output manager and initializes the output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "history.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating history.csv: %w", err)
	}
	om.historyFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.historyFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	f, err = os.Create(filepath.Join(dir, "bookmarks.csv"))
	if err != nil {
		om.historyFile.Close()
		om.perfFile.Close()
		return nil, fmt.Errorf("creating bookmarks.csv: %w", err)
	}
	om.bookmarkFile = f

	return om, nil
}

// WriteConfig saves the current configuration as YAML.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteDay appends a day record to history.csv.
func (om *OutputManager) WriteDay(stats DayStats) error {
	if om == nil {
		return nil
	}

	records := []DayStats{stats}

	if !om.historyHeaderWritten {
		// First write includes headers
		if err := gocsv.Marshal(records, om.historyFile); err != nil {
			return fmt.Errorf("writing history: %w", err)
		}
		om.historyHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.historyFile); err != nil {
			return fmt.Errorf("writing history: %w", err)
		}
	}

	return nil
}

// WritePerf writes a performance stats record to perf.csv.
func (om *OutputManager) WritePerf(stats PerfStats, day int) error {
	if om == nil {
		return nil
	}

	records := []PerfStatsCSV{stats.ToCSV(day)}

	if !om.perfHeaderWritten {
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
		om.perfHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf: %w", err)
		}
	}

	return nil
}

// WriteBookmark writes a bookmark record to bookmarks.csv.
func (om *OutputManager) WriteBookmark(b Bookmark) error {
	if om == nil {
		return nil
	}

	records := []Bookmark{b}

	if !om.bookmarkHeaderWritten {
		if err := gocsv.Marshal(records, om.bookmarkFile); err != nil {
			return fmt.Errorf("writing bookmark: %w", err)
		}
		om.bookmarkHeaderWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, om.bookmarkFile); err != nil {
			return fmt.Errorf("writing bookmark: %w", err)
		}
	}

	return nil
}

// WriteAgents writes the final agent table to agents.csv.
func (om *OutputManager) WriteAgents(records []AgentRecord) error {
	if om == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(om.dir, "agents.csv"))
	if err != nil {
		return fmt.Errorf("creating agents.csv: %w", err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&records, f); err != nil {
		return fmt.Errorf("writing agents: %w", err)
	}
	return nil
}

// Dir returns the output directory path.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}

	var errs []error
	for _, f := range []*os.File{om.historyFile, om.perfFile, om.bookmarkFile} {
		if f == nil {
			continue
		}
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
