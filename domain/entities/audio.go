package entities

// AudioInput is a single uploaded utterance, fully buffered in memory.
// It lives for one pipeline invocation and is discarded afterwards.
type AudioInput struct {
	Data        []byte
	Filename    string
	ContentType string
}

// Size returns the payload length in bytes.
func (a *AudioInput) Size() int {
	if a == nil {
		return 0
	}
	return len(a.Data)
}
