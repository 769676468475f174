package match

// Score is the running point score of one set.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// Add returns the score after the given team's point.
func (s Score) Add(team TeamSide) Score {
	if team == TeamHome {
		s.Home++
	} else {
		s.Away++
	}
	return s
}

// Leader returns the side currently ahead, or "" on a tie.
func (s Score) Leader() TeamSide {
	switch {
	case s.Home > s.Away:
		return TeamHome
	case s.Away > s.Home:
		return TeamAway
	}
	return ""
}

// SetTarget returns the points needed to win the given set: 25, or 15 in a
// deciding fifth set.
func SetTarget(setNumber int) int {
	if setNumber >= 5 {
		return 15
	}
	return 25
}

// SetComplete reports whether the set is over (target reached with a two-point
// margin) and which side won it.
func SetComplete(s Score, setNumber int) (bool, TeamSide) {
	target := SetTarget(setNumber)
	lead, trail := s.Home, s.Away
	winner := TeamHome
	if s.Away > s.Home {
		lead, trail = s.Away, s.Home
		winner = TeamAway
	}
	if lead >= target && lead-trail >= 2 {
		return true, winner
	}
	return false, ""
}

// ScoreFromEvents recomputes a set's score from its recorded point events.
func ScoreFromEvents(events []PointEvent) Score {
	var s Score
	for _, ev := range events {
		s = s.Add(ev.ScoringTeam)
	}
	return s
}
