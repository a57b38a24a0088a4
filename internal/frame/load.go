package frame

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

// ErrNoFrames is returned when an asset directory holds no frame files.
var ErrNoFrames = errors.New("no frames found")

// Asset subdirectories.
const (
	RocketDir  = "rocket"
	GarbageDir = "garbage"
)

const frameExt = ".txt"

//go:embed assets
var embedded embed.FS

// Set is the full collection of sprites the animation needs.
type Set struct {
	Rocket  []*Frame // Ship animation cycle
	Garbage []*Frame // Debris variants, in spawn rotation order
}

// Load reads every .txt file in dir (in lexical order) as one frame.
func Load(fsys fs.FS, dir string) ([]*Frame, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read frames %s: %w", dir, err)
	}

	var frames []*Frame
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), frameExt) {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read frame %s: %w", entry.Name(), err)
		}
		f, err := Parse(strings.TrimSuffix(entry.Name(), frameExt), string(data))
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)
	}

	if len(frames) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoFrames)
	}
	return frames, nil
}

// LoadSet reads the rocket and garbage subdirectories of fsys.
func LoadSet(fsys fs.FS) (Set, error) {
	rocket, err := Load(fsys, RocketDir)
	if err != nil {
		return Set{}, err
	}
	garbage, err := Load(fsys, GarbageDir)
	if err != nil {
		return Set{}, err
	}
	return Set{Rocket: rocket, Garbage: garbage}, nil
}

// LoadDir reads a frame set from a directory on disk.
func LoadDir(dir string) (Set, error) {
	return LoadSet(os.DirFS(dir))
}

// Default returns the frame set compiled into the binary.
func Default() (Set, error) {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		return Set{}, err
	}
	return LoadSet(sub)
}
