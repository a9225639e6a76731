package score

import (
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// CSV column indices for data/state_grid.csv.
const (
	colState    = 0
	colSAIDI    = 1
	colHeat     = 2
	colStorm    = 3
	colWildfire = 4
)

//go:embed data/state_grid.csv
var stateGridCSV string

// StateGridRow holds per-state grid-reliability and climate-exposure data.
type StateGridRow struct {
	State         string
	SAIDIMinutes  float64 // average annual outage minutes per customer, major events included
	HeatIndex     float64 // 0-3
	StormIndex    float64 // 0-3
	WildfireIndex float64 // 0-3
}

// DefaultStateGridRow is used for unknown states and territories.
var DefaultStateGridRow = StateGridRow{
	State:         "DEFAULT",
	SAIDIMinutes:  240,
	HeatIndex:     2,
	StormIndex:    2,
	WildfireIndex: 0,
}

var (
	stateGridRows map[string]StateGridRow
	stateGridOnce sync.Once

	pkgLogger = zerolog.Nop()
)

// SetLogger injects a logger used for data-asset parse warnings. Defaults to
// a no-op logger so library consumers that never call it stay silent.
func SetLogger(logger zerolog.Logger) {
	pkgLogger = logger
}

// parseStateGrid loads the embedded CSV into the lookup map. Malformed rows
// are skipped with a warning rather than failing the whole table.
func parseStateGrid() {
	stateGridRows = make(map[string]StateGridRow)

	reader := csv.NewReader(strings.NewReader(stateGridCSV))

	// Skip header row.
	if _, err := reader.Read(); err != nil {
		pkgLogger.Warn().Err(err).Msg("state grid data: missing header")
		return
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			pkgLogger.Warn().Err(err).Msg("state grid data: unreadable row")
			continue
		}
		if len(record) <= colWildfire {
			pkgLogger.Warn().Strs("row", record).Msg("state grid data: short row")
			continue
		}

		state := strings.TrimSpace(record[colState])
		saidi, err1 := strconv.ParseFloat(record[colSAIDI], 64)
		heat, err2 := strconv.ParseFloat(record[colHeat], 64)
		storm, err3 := strconv.ParseFloat(record[colStorm], 64)
		wildfire, err4 := strconv.ParseFloat(record[colWildfire], 64)
		if state == "" || err1 != nil || err2 != nil || err3 != nil || err4 != nil || saidi < 0 {
			pkgLogger.Warn().Strs("row", record).Msg("state grid data: malformed row")
			continue
		}

		stateGridRows[state] = StateGridRow{
			State:         state,
			SAIDIMinutes:  saidi,
			HeatIndex:     heat,
			StormIndex:    storm,
			WildfireIndex: wildfire,
		}
	}
}

// GetStateGrid returns the grid/climate row for a state code, falling back to
// DefaultStateGridRow for unknown states.
func GetStateGrid(state string) StateGridRow {
	stateGridOnce.Do(parseStateGrid)
	if row, ok := stateGridRows[state]; ok {
		return row
	}
	return DefaultStateGridRow
}
