package game

import (
	"errors"
	"fmt"
)

// The pitch is a 5x3 grid. Row 0 is the attacking team's own goal area and
// row 4 the opponent's; column 1 is the central channel.
const (
	ZoneRows  = 5
	ZoneCols  = 3
	ZoneCount = ZoneRows * ZoneCols
)

var (
	ErrInvalidZone       = errors.New("invalid zone")
	ErrInvalidCoordinate = errors.New("invalid zone coordinate")
)

// Zone identifies one cell of the pitch grid, numbered 1..15 row-major.
type Zone int

// Valid reports whether z lies on the grid.
func (z Zone) Valid() bool {
	return z >= 1 && z <= ZoneCount
}

// Row returns the zone's row. It panics on an invalid zone: every zone the
// engine holds is validated when it enters the match.
func (z Zone) Row() int {
	row, _ := z.mustCoords()
	return row
}

// Col returns the zone's column. Panics like Row.
func (z Zone) Col() int {
	_, col := z.mustCoords()
	return col
}

// IsForward reports whether the zone is in the opponent's goal row.
func (z Zone) IsForward() bool { return z.Row() == ZoneRows-1 }

// IsBackward reports whether the zone is in the own goal row.
func (z Zone) IsBackward() bool { return z.Row() == 0 }

// IsCentral reports whether the zone is in the central channel.
func (z Zone) IsCentral() bool { return z.Col() == 1 }

func (z Zone) mustCoords() (int, int) {
	row, col, err := ZoneToCoords(z)
	if err != nil {
		panic(err)
	}
	return row, col
}

// ZoneToCoords converts a zone id to (row, col).
func ZoneToCoords(z Zone) (int, int, error) {
	if !z.Valid() {
		return 0, 0, fmt.Errorf("%w: %d (must be 1..%d)", ErrInvalidZone, z, ZoneCount)
	}
	idx := int(z) - 1
	return idx / ZoneCols, idx % ZoneCols, nil
}

// CoordsToZone converts (row, col) to a zone id.
func CoordsToZone(row, col int) (Zone, error) {
	if row < 0 || row >= ZoneRows || col < 0 || col >= ZoneCols {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrInvalidCoordinate, row, col)
	}
	return Zone(row*ZoneCols + col + 1), nil
}

// Distance is the Manhattan distance between two zones (0..6).
func Distance(a, b Zone) int {
	ar, ac := a.mustCoords()
	br, bc := b.mustCoords()
	return absInt(ar-br) + absInt(ac-bc)
}

// ZonesInRow lists the zones of one row, left to right.
func ZonesInRow(row int) ([]Zone, error) {
	if row < 0 || row >= ZoneRows {
		return nil, fmt.Errorf("%w: row %d", ErrInvalidCoordinate, row)
	}
	out := make([]Zone, 0, ZoneCols)
	for col := 0; col < ZoneCols; col++ {
		out = append(out, Zone(row*ZoneCols+col+1))
	}
	return out, nil
}

// ZonesInCol lists the zones of one column, own goal first.
func ZonesInCol(col int) ([]Zone, error) {
	if col < 0 || col >= ZoneCols {
		return nil, fmt.Errorf("%w: col %d", ErrInvalidCoordinate, col)
	}
	out := make([]Zone, 0, ZoneRows)
	for row := 0; row < ZoneRows; row++ {
		out = append(out, Zone(row*ZoneCols+col+1))
	}
	return out, nil
}

var (
	buildUpZones    = []Zone{1, 2, 3, 4, 5, 6}
	midfieldZones   = []Zone{7, 8, 9}
	finalThirdZones = []Zone{10, 11, 12, 13, 14, 15}
	allZones        = []Zone{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}
)

// PhaseZones returns the zones that belong to a phase. Transition and
// defense span the whole pitch. The returned slice must not be modified.
func PhaseZones(p Phase) []Zone {
	switch p {
	case PhaseBuildUp:
		return buildUpZones
	case PhaseMidfield:
		return midfieldZones
	case PhaseFinalThird:
		return finalThirdZones
	default:
		return allZones
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
