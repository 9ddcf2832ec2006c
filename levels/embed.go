package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Course is a stretch of track. When Loop is set the items repeat every
// Length units so the run never ends.
type Course struct {
	Name   string  `json:"name"`
	Length float64 `json:"length"`
	Loop   bool    `json:"loop"`
	// Start is the distance before the first item, so the player gets a
	// clear run-up.
	Start float64 `json:"start"`
	Items []Item  `json:"items"`
}

// Item places one prefab on the course. Z is relative to the start of a
// course repetition. Zero-valued overrides keep the prefab's values.
type Item struct {
	Prefab string  `json:"prefab"`
	Z      float64 `json:"z"`
	Lanes  []int   `json:"lanes"`
	Y      float64 `json:"y,omitempty"`
	Height float64 `json:"height,omitempty"`
	Depth  float64 `json:"depth,omitempty"`
	// VelocityZ overrides a moving obstacle's speed along the track.
	VelocityZ float64 `json:"velocity_z,omitempty"`
}

var ErrInvalidCourse = errors.New("levels: invalid course")

// LoadCourse reads an embedded course. The .json extension is optional.
func LoadCourse(name string) (*Course, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", name, err)
	}
	return ParseCourse(data)
}

// LoadCourseFile reads a course from disk instead of the embedded set.
func LoadCourseFile(path string) (*Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return ParseCourse(data)
}

func ParseCourse(data []byte) (*Course, error) {
	var c Course
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("levels: unmarshal course: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	sort.SliceStable(c.Items, func(i, j int) bool { return c.Items[i].Z < c.Items[j].Z })
	return &c, nil
}

func (c *Course) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%w: length must be positive, got %v", ErrInvalidCourse, c.Length)
	}
	for i, it := range c.Items {
		if it.Prefab == "" {
			return fmt.Errorf("%w: item %d has no prefab", ErrInvalidCourse, i)
		}
		if it.Z < 0 || it.Z >= c.Length {
			return fmt.Errorf("%w: item %d z=%v outside [0,%v)", ErrInvalidCourse, i, it.Z, c.Length)
		}
		if len(it.Lanes) == 0 {
			return fmt.Errorf("%w: item %d has no lanes", ErrInvalidCourse, i)
		}
		for _, l := range it.Lanes {
			if l < 0 || l > 2 {
				return fmt.Errorf("%w: item %d lane %d out of range", ErrInvalidCourse, i, l)
			}
		}
	}
	return nil
}

// Names lists the embedded courses.
func Names() []string {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names
}
