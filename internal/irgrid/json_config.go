package irgrid

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
)

type SphereCfg struct {
	Center [3]Real `json:"center"`
	Radius Real    `json:"radius"`
}

type BoxCfg struct {
	Min [3]Real `json:"min"`
	Max [3]Real `json:"max"`
}

type TriangleCfg struct {
	A [3]Real `json:"a"`
	B [3]Real `json:"b"`
	C [3]Real `json:"c"`
}

type Config struct {
	Density         Real   `json:"density,omitempty"`
	Shift           int32  `json:"shift"`
	SubdivThreshold int    `json:"subdivThreshold,omitempty"`
	Iterations      int    `json:"iterations,omitempty"`
	Compress        bool   `json:"compress,omitempty"`
	GridOut         string `json:"gridOut,omitempty"`

	Spheres   []SphereCfg   `json:"spheres,omitempty"`
	Boxes     []BoxCfg      `json:"boxes,omitempty"`
	Triangles []TriangleCfg `json:"triangles,omitempty"`
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := &Config{
		Density:         DefaultDensity,
		Shift:           DefaultShift,
		SubdivThreshold: DefaultSubdivThreshold,
		Iterations:      DefaultIterations,
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Density <= 0 {
		return nil, fmt.Errorf("config %s: density must be positive", path)
	}
	if cfg.Iterations <= 0 {
		return nil, fmt.Errorf("config %s: iterations must be positive", path)
	}
	return cfg, nil
}

// Primitives builds the scene's primitive slice; indices into it are the
// grid's reference IDs.
func (c *Config) Primitives() []Primitive {
	prims := make([]Primitive, 0, len(c.Spheres)+len(c.Boxes)+len(c.Triangles))
	for _, s := range c.Spheres {
		prims = append(prims, Sphere{Center: mgl64.Vec3(s.Center), Radius: s.Radius})
	}
	for _, b := range c.Boxes {
		prims = append(prims, Box{Min: mgl64.Vec3(b.Min), Max: mgl64.Vec3(b.Max)})
	}
	for _, t := range c.Triangles {
		prims = append(prims, Triangle{A: mgl64.Vec3(t.A), B: mgl64.Vec3(t.B), C: mgl64.Vec3(t.C)})
	}
	return prims
}
