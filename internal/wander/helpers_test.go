package wander

import "github.com/vovakirdan/wander/internal/core"

// seqSource replays a fixed sequence of values, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func newSeq(vals ...float64) *seqSource {
	return &seqSource{vals: vals}
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// seqFactory hands every generation the same value sequence.
func seqFactory(vals ...float64) SourceFactory {
	return func(int64) Source {
		return newSeq(vals...)
	}
}

type ellipseCall struct {
	cx, cy, rx, ry float64
	fill, stroke   core.RGB
}

// recordingCanvas captures draw calls.
type recordingCanvas struct {
	fills    []core.RGB
	ellipses []ellipseCall
}

func (r *recordingCanvas) Fill(bg core.RGB) {
	r.fills = append(r.fills, bg)
}

func (r *recordingCanvas) Ellipse(cx, cy, rx, ry float64, fill, stroke core.RGB) {
	r.ellipses = append(r.ellipses, ellipseCall{cx, cy, rx, ry, fill, stroke})
}
