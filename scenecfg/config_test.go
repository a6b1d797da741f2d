package scenecfg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/shade"
	"github.com/mirstar13/dimension-prt/vecmath"
)

const sampleScene = `
[canvas]
width = 320
height = 240

[camera]
location = [0, 0, -10]
look_at = [0, 0, 0]
fov_x = 60

[render]
reclimit = 3
nthreads = 4
quality = ["pigment", "lights"]

[[lights]]
direction = [0, 1, -1]
color = [1, 1, 1]

background = [0.1, 0.2, 0.3]
`

func writeTemp(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadBuildsSceneFromTOML(t *testing.T) {
	path := writeTemp(t, sampleScene)
	sphere := object.NewSphere(vecmath.Identity(), nil)

	cfg, err := Load(path, []object.Object{sphere})
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Scene.Reclimit)
	assert.Equal(t, shade.QPigment|shade.QLights, cfg.Scene.Quality)
	assert.Equal(t, 4, cfg.NThreads)
	assert.Len(t, cfg.Scene.Lights, 1)
	assert.Equal(t, 320, cfg.Region.OuterWidth)
}

func TestLoadRejectsEmptyScene(t *testing.T) {
	path := writeTemp(t, sampleScene)
	_, err := Load(path, nil)
	assert.Error(t, err)
}

func TestLoadRejectsMissingCanvas(t *testing.T) {
	path := writeTemp(t, `
[camera]
location = [0, 0, -10]
look_at = [0, 0, 0]
`)
	sphere := object.NewSphere(vecmath.Identity(), nil)
	_, err := Load(path, []object.Object{sphere})
	assert.Error(t, err)
}

func TestPerspectiveCameraRayPointsForward(t *testing.T) {
	cam := NewPerspectiveCamera(vecmath.Zero, vecmath.New(0, 0, 1), 60, 60)
	ray := ApplyCamera(cam, 0.5, 0.5)
	assert.InDelta(t, 1.0, ray.N.Z, 1e-9)
}
