package export

import (
	"encoding/json"
	"os"
	"sort"
)

// ManifestEntry describes one written frame.
type ManifestEntry struct {
	Index  int    `json:"index"`
	Image  string `json:"image"`
	Status string `json:"status"`
}

// Manifest is written as manifest.json next to the frames.
type Manifest struct {
	Format     string          `json:"format"`
	FrameDelay int             `json:"frame_delay_ms"`
	Animation  string          `json:"animation,omitempty"`
	Frames     []ManifestEntry `json:"frames"`
}

// WriteManifest writes manifest.json listing every successful frame.
func WriteManifest(path string, m Manifest) error {
	sort.Slice(m.Frames, func(i, j int) bool { return m.Frames[i].Index < m.Frames[j].Index })
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, err
	}
	err = json.Unmarshal(data, &m)
	return m, err
}
