package game

// formationZones is the default zone per phase and position, indexed
// [phase][position]. Transition borrows the midfield row.
var formationZones = [...][4]Zone{
	PhaseBuildUp:    {Goalkeeper: 2, Defender: 2, Midfielder: 5, Forward: 8},
	PhaseMidfield:   {Goalkeeper: 2, Defender: 5, Midfielder: 8, Forward: 11},
	PhaseFinalThird: {Goalkeeper: 2, Defender: 5, Midfielder: 8, Forward: 14},
	PhaseTransition: {Goalkeeper: 2, Defender: 5, Midfielder: 8, Forward: 11},
	PhaseDefense:    {Goalkeeper: 2, Defender: 2, Midfielder: 5, Forward: 8},
}

// DefaultZone returns where a player of pos stands in phase p. Both roles
// share the table; a defending side is positioned for PhaseDefense.
func DefaultZone(pos Position, p Phase) Zone {
	if p < PhaseBuildUp || p > PhaseDefense {
		p = PhaseMidfield
	}
	if pos < Goalkeeper || pos > Forward {
		return 8
	}
	return formationZones[p][pos]
}

// PositionTeam moves every player to their default zone for phase p.
func PositionTeam(t *Team, p Phase) {
	for _, pl := range t.Players {
		pl.Zone = DefaultZone(pl.Position, p)
	}
}

// PlayersInZone returns the players standing in z, roster order.
func PlayersInZone(t *Team, z Zone) []*Player {
	var out []*Player
	for _, p := range t.Players {
		if p.Zone == z {
			out = append(out, p)
		}
	}
	return out
}

// PlayersInZones returns the players standing in any of zones, roster order.
func PlayersInZones(t *Team, zones []Zone) []*Player {
	var out []*Player
	for _, p := range t.Players {
		for _, z := range zones {
			if p.Zone == z {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// PlayersForPhase returns the players inside the zone set of phase p.
func PlayersForPhase(t *Team, p Phase) []*Player {
	return PlayersInZones(t, PhaseZones(p))
}

// NearestPlayer returns the player closest to z. Ties go to the earlier
// roster entry. excludeID skips one player; 0 excludes nobody.
func NearestPlayer(t *Team, z Zone, excludeID int) *Player {
	var best *Player
	bestDist := 0
	for _, p := range t.Players {
		if excludeID != 0 && p.ID == excludeID {
			continue
		}
		d := Distance(p.Zone, z)
		if best == nil || d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}
