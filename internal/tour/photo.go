package tour

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dorilab/dori/internal/filestore"
	"github.com/dorilab/dori/internal/speech"
)

// CameraPhotographer captures a frame and persists it in the photo store
// under a timestamped key.
type CameraPhotographer struct {
	camera speech.Camera
	store  filestore.Store
	now    func() time.Time
}

func NewCameraPhotographer(camera speech.Camera, store filestore.Store) *CameraPhotographer {
	return &CameraPhotographer{camera: camera, store: store, now: time.Now}
}

func (p *CameraPhotographer) TakePhoto(ctx context.Context) (string, error) {
	if p.camera == nil {
		return "", fmt.Errorf("camera not configured")
	}
	frame, err := p.camera.Capture(ctx)
	if err != nil {
		return "", fmt.Errorf("capture frame: %w", err)
	}
	key := fmt.Sprintf("tour_%s.jpg", p.now().Format("20060102_150405"))
	if p.store == nil {
		return key, nil
	}
	rd := nopSeekCloser{bytes.NewReader(frame)}
	if err := p.store.Save(ctx, key, rd, int64(len(frame))); err != nil {
		return "", fmt.Errorf("store photo: %w", err)
	}
	return key, nil
}

type nopSeekCloser struct{ *bytes.Reader }

func (nopSeekCloser) Close() error { return nil }

var _ io.ReadSeeker = nopSeekCloser{}
