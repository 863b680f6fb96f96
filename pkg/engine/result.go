// Package engine turns audio into transcripts. A Pipeline reads audio from
// an AudioSource, feeds it to a backend Core and hands the transcripts to
// the recognizer variants.
package engine

// Result is one transcript produced by a backend.
type Result struct {
	Transcript string
	IsFinal    bool
}
