package irgrid

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, `{"spheres":[{"center":[1,2,3],"radius":0.5}]}`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Density != DefaultDensity || cfg.Shift != DefaultShift ||
		cfg.SubdivThreshold != DefaultSubdivThreshold || cfg.Iterations != DefaultIterations {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	prims := cfg.Primitives()
	if len(prims) != 1 {
		t.Fatalf("primitives = %d, want 1", len(prims))
	}
	s, ok := prims[0].(Sphere)
	if !ok || s.Radius != 0.5 || s.Center[2] != 3 {
		t.Fatalf("sphere parsed wrong: %+v", prims[0])
	}
}

func TestLoadConfigAllPrimitiveKinds(t *testing.T) {
	path := writeConfig(t, `{
		"iterations": 5,
		"shift": 0,
		"compress": true,
		"spheres":   [{"center":[0,0,0],"radius":1}],
		"boxes":     [{"min":[0,0,0],"max":[1,1,1]}],
		"triangles": [{"a":[0,0,0],"b":[1,0,0],"c":[0,1,0]}]
	}`)
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Iterations != 5 || cfg.Shift != 0 || !cfg.Compress {
		t.Fatalf("explicit values not honored: %+v", cfg)
	}
	if got := len(cfg.Primitives()); got != 3 {
		t.Fatalf("primitives = %d, want 3", got)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("missing file must fail")
	}
	if _, err := loadConfig(writeConfig(t, `{not json`)); err == nil {
		t.Errorf("malformed JSON must fail")
	}
	if _, err := loadConfig(writeConfig(t, `{"density":-1}`)); err == nil {
		t.Errorf("negative density must fail")
	}
	if _, err := loadConfig(writeConfig(t, `{"iterations":-2}`)); err == nil {
		t.Errorf("negative iteration count must fail")
	}
}
