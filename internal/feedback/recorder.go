package feedback

// Recorder keeps every cue it receives.
type Recorder struct {
	cues []Cue
}

func (r *Recorder) Notify(c Cue) { r.cues = append(r.cues, c) }

// Cues returns a copy of the recorded cues, oldest first.
func (r *Recorder) Cues() []Cue {
	out := make([]Cue, len(r.cues))
	copy(out, r.cues)
	return out
}

// Last returns the most recent cue.
func (r *Recorder) Last() (Cue, bool) {
	if len(r.cues) == 0 {
		return Cue{}, false
	}
	return r.cues[len(r.cues)-1], true
}

func (r *Recorder) Reset() { r.cues = nil }
