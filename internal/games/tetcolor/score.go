package tetcolor

// ScoreKeeper accumulates points and the bonus chain of one cascade.
type ScoreKeeper struct {
	score     int
	chain     []int
	lastBonus int
}

// Add adds points to the score.
func (s *ScoreKeeper) Add(points int) {
	s.score += points
}

// Push records the bonus class of one detection pass in the current cascade.
func (s *ScoreKeeper) Push(bonus int) {
	s.chain = append(s.chain, bonus)
}

// Settle ends the cascade. A chain of two or more passes earns ComboBonus;
// the earned amount is added to the score, kept as LastBonus and returned.
func (s *ScoreKeeper) Settle() int {
	bonus := ComboBonus(s.chain)
	if bonus > 0 {
		s.score += bonus
		s.lastBonus = bonus
	}
	s.chain = s.chain[:0]
	return bonus
}

// ResetLastBonus clears the bonus shown to the player.
func (s *ScoreKeeper) ResetLastBonus() {
	s.lastBonus = 0
}

// Score returns the accumulated score.
func (s *ScoreKeeper) Score() int { return s.score }

// LastBonus returns the most recent combo bonus, 0 once cleared.
func (s *ScoreKeeper) LastBonus() int { return s.lastBonus }

// Chain returns a copy of the current cascade's bonus classes.
func (s *ScoreKeeper) Chain() []int {
	return append([]int(nil), s.chain...)
}

// ComboBonus returns the bonus for a cascade: nothing for fewer than two
// passes, otherwise 500 + 1000 per pass beyond the second, plus 500 more when
// any pass was a big one (class 2).
func ComboBonus(chain []int) int {
	if len(chain) < 2 {
		return 0
	}
	bonus := 500 + 1000*(len(chain)-2)
	for _, b := range chain {
		if b == 2 {
			bonus += 500
			break
		}
	}
	return bonus
}
