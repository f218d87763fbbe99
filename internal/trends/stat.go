package trends

// stat is a running mean that stays within the observed minimum and maximum.
type stat struct {
	n        int
	sum      float64
	min, max float64
}

func (s *stat) add(v float64) {
	if s.n == 0 || v < s.min {
		s.min = v
	}
	if s.n == 0 || v > s.max {
		s.max = v
	}
	s.n++
	s.sum += v
}

// mean is zero for an empty stat. Rounding in the sum can push the quotient an ulp
// past the extremes, so it is clamped back.
func (s stat) mean() float64 {
	if s.n == 0 {
		return 0
	}
	m := s.sum / float64(s.n)
	if m < s.min {
		return s.min
	}
	if m > s.max {
		return s.max
	}
	return m
}
