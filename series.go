package gauges

// series is a bounded FIFO of float64 samples backed by a ring buffer.
// Appending to a full series evicts the oldest sample. The zero value is
// not usable; construct with newSeries.
type series struct {
	buf   []float64
	start int
	n     int
}

func newSeries(capacity int) *series {
	return &series{buf: make([]float64, capacity)}
}

// push appends a sample, evicting the oldest one when full.
func (s *series) push(v float64) {
	if s.n < len(s.buf) {
		s.buf[(s.start+s.n)%len(s.buf)] = v
		s.n++
		return
	}
	s.buf[s.start] = v
	s.start = (s.start + 1) % len(s.buf)
}

// len returns the number of stored samples.
func (s *series) len() int {
	return s.n
}

// at returns the i-th sample in arrival order, 0 being the oldest.
func (s *series) at(i int) float64 {
	return s.buf[(s.start+i)%len(s.buf)]
}
