package input

// Poll performs exactly one decode attempt and degrades any failure
// to the None event. It blocks no longer than a single underlying
// read may block; callers wanting true non-blocking behavior supply a
// source with its own readiness semantics and race Poll against their
// loop timer.
func (r *Reader) Poll() Event {
	ev, err := r.ReadEvent()
	if err != nil {
		return None()
	}
	return ev
}
