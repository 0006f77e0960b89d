package speech

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"strconv"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"
)

// ALSA-backed devices for the robot platform. Each shells out to the
// standard tools so the binary has no cgo audio dependency and the devices
// can be swapped per deployment via config.
const (
	defaultRecordCmd  = "arecord"
	defaultPlayCmd    = "aplay"
	defaultCaptureCmd = "fswebcam"
)

// AlsaRecorder records mono 16kHz WAV clips with arecord.
type AlsaRecorder struct {
	cmd    string
	device string
}

func NewAlsaRecorder(device string) *AlsaRecorder {
	return &AlsaRecorder{cmd: defaultRecordCmd, device: device}
}

func (r *AlsaRecorder) Record(ctx context.Context, seconds float64) ([]byte, error) {
	if seconds <= 0 {
		return nil, fmt.Errorf("record duration must be positive")
	}
	// arecord only takes whole seconds.
	duration := int(math.Ceil(seconds))
	args := []string{"-q", "-f", "S16_LE", "-r", "16000", "-c", "1",
		"-t", "wav", "-d", strconv.Itoa(duration)}
	if r.device != "" {
		args = append(args, "-D", r.device)
	}
	args = append(args, "-")

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, r.cmd, args...)
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("record audio: %w", err)
	}
	return out.Bytes(), nil
}

// AlsaPlayer plays WAV audio through aplay.
type AlsaPlayer struct {
	cmd    string
	device string
}

func NewAlsaPlayer(device string) *AlsaPlayer {
	return &AlsaPlayer{cmd: defaultPlayCmd, device: device}
}

func (p *AlsaPlayer) Play(ctx context.Context, audio []byte) error {
	if len(audio) == 0 {
		return nil
	}
	args := []string{"-q"}
	if p.device != "" {
		args = append(args, "-D", p.device)
	}
	cmd := exec.CommandContext(ctx, p.cmd, args...)
	cmd.Stdin = bytes.NewReader(audio)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("play audio: %w", err)
	}
	return nil
}

// WebcamCamera captures a JPEG frame with fswebcam.
type WebcamCamera struct {
	cmd    string
	device string
}

func NewWebcamCamera(device string) *WebcamCamera {
	return &WebcamCamera{cmd: defaultCaptureCmd, device: device}
}

func (c *WebcamCamera) Capture(ctx context.Context) ([]byte, error) {
	tmp, err := os.CreateTemp("", "dori_frame_*.jpg")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	args := []string{"-q", "--no-banner", "--jpeg", "90"}
	if c.device != "" {
		args = append(args, "-d", c.device)
	}
	args = append(args, tmpPath)
	if err := exec.CommandContext(ctx, c.cmd, args...).Run(); err != nil {
		return nil, fmt.Errorf("capture frame: %w", err)
	}
	frame, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, err
	}
	if len(frame) == 0 {
		return nil, fmt.Errorf("camera produced an empty frame")
	}
	logutil.GetLogger(ctx).Debug("frame captured", zap.Int("bytes", len(frame)))
	return frame, nil
}
