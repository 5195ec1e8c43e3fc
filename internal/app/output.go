package app

// Output is what the engine hands back after every step. Question is nil once
// the match is over.
type Output struct {
	Question      *Question      `json:"question"`
	Notifications []Notification `json:"notifications"`
}

// Finished reports whether the match ended with this output.
func (o Output) Finished() bool {
	return o.Question == nil
}
