package speech

import "context"

// Recorder captures microphone audio for a fixed wall-clock duration and
// returns it in a container the transcription backend accepts (wav).
type Recorder interface {
	Record(ctx context.Context, seconds float64) ([]byte, error)
}

// Player plays one synthesized audio clip to completion.
type Player interface {
	Play(ctx context.Context, audio []byte) error
}

// Camera captures a single still frame.
type Camera interface {
	Capture(ctx context.Context) ([]byte, error)
}
