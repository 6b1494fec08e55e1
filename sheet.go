package ember

import (
	"encoding/json"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sheet pairs a sprite sheet image with named frame rectangles, parsed
// from TexturePacker-style JSON ("frames" hash format). It feeds
// [Animator] definitions and sprite-shaped particles.
type Sheet struct {
	Image  *ebiten.Image
	frames map[string]image.Rectangle
}

type jsonSheetRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonSheetFrame struct {
	Frame jsonSheetRect `json:"frame"`
}

type jsonSheet struct {
	Frames map[string]jsonSheetFrame `json:"frames"`
}

// LoadSheet parses frame metadata for the given sheet image.
func LoadSheet(img *ebiten.Image, jsonData []byte) (*Sheet, error) {
	var parsed jsonSheet
	if err := json.Unmarshal(jsonData, &parsed); err != nil {
		return nil, fmt.Errorf("parse sheet metadata: %w", err)
	}
	if len(parsed.Frames) == 0 {
		return nil, fmt.Errorf("parse sheet metadata: no frames")
	}
	s := &Sheet{Image: img, frames: make(map[string]image.Rectangle, len(parsed.Frames))}
	for name, f := range parsed.Frames {
		s.frames[name] = image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+f.Frame.W, f.Frame.Y+f.Frame.H)
	}
	return s, nil
}

// Frame returns the rectangle for the named frame. Unknown names log a
// debug warning and return a 1×1 placeholder at the origin.
func (s *Sheet) Frame(name string) image.Rectangle {
	if r, ok := s.frames[name]; ok {
		return r
	}
	debugf("ember: sheet frame %q not found, using placeholder", name)
	return image.Rect(0, 0, 1, 1)
}

// HasFrame reports whether the named frame exists.
func (s *Sheet) HasFrame(name string) bool {
	_, ok := s.frames[name]
	return ok
}

// FrameCount returns the number of named frames.
func (s *Sheet) FrameCount() int {
	return len(s.frames)
}

// Animation builds an [Animation] from the named frames in order, each
// with the given duration in ms.
func (s *Sheet) Animation(names []string, duration float64, loop, pingPong bool) *Animation {
	frames := make([]Frame, len(names))
	for i, name := range names {
		frames[i] = Frame{Rect: s.Frame(name), Duration: duration}
	}
	return &Animation{Sheet: s.Image, Frames: frames, Loop: loop, PingPong: pingPong}
}
