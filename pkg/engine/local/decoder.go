package local

//go:generate moq -rm -out decoder_mock.go . Decoder

// Decoder is an incremental speech decoder in the shape of a vosk
// recognizer. Results are JSON documents: {"partial": "..."} for
// PartialResult and {"text": "..."} for Result and FinalResult.
type Decoder interface {
	// AcceptWaveform returns non-zero when an utterance has ended and
	// Result is ready.
	AcceptWaveform([]byte) int
	PartialResult() []byte
	Result() []byte
	FinalResult() []byte
}
