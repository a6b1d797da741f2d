package scenecfg

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/mirstar13/dimension-prt/bvh"
	"github.com/mirstar13/dimension-prt/object"
	"github.com/mirstar13/dimension-prt/shade"
	"github.com/mirstar13/dimension-prt/vecmath"
)

func bvhBuild(objects []object.Object) *bvh.BVH {
	return bvh.New(objects)
}

// fileConfig is the raw TOML shape; it mirrors spec.md's recognized scene
// configuration keys one field at a time, then Build() turns it into the
// runtime shade.Scene plus render geometry (width/height/region).
type fileConfig struct {
	Canvas  canvasConfig  `toml:"canvas"`
	Camera  cameraConfig  `toml:"camera"`
	Render  renderConfig  `toml:"render"`
	Lights  []lightConfig `toml:"lights"`

	// BackgroundRGB is the flat color used when no object intersects a
	// ray; a full pigment callback is an out-of-scope external
	// collaborator per spec.md, so a config file can only describe a
	// solid background.
	BackgroundRGB [3]float64 `toml:"background"`
}

type canvasConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// RegionX/RegionY/OuterWidth/OuterHeight: render a sub-rectangle of a
	// larger virtual frame, computing camera rays as if the full image
	// were being rendered (spec.md §6).
	RegionX     int `toml:"region_x"`
	RegionY     int `toml:"region_y"`
	OuterWidth  int `toml:"outer_width"`
	OuterHeight int `toml:"outer_height"`
}

type cameraConfig struct {
	Location [3]float64 `toml:"location"`
	LookAt   [3]float64 `toml:"look_at"`
	FOVX     float64    `toml:"fov_x"`
	FOVY     float64    `toml:"fov_y"`
}

type renderConfig struct {
	Quality    []string `toml:"quality"`
	Reclimit   int      `toml:"reclimit"`
	AdcBailout float64  `toml:"adc_bailout"`
	NThreads   int      `toml:"nthreads"`
}

type lightConfig struct {
	Direction [3]float64 `toml:"direction"`
	Color     [3]float64 `toml:"color"`
}

// Region describes the sub-rectangle of a larger virtual frame that this
// process is responsible for rendering, per spec.md's
// region_x/region_y/outer_width/outer_height keys.
type Region struct {
	X, Y               int
	Width, Height      int
	OuterWidth, OuterHeight int
}

// Config is the parsed, validated scene ready to hand to the render
// driver: a shade.Scene, a Camera, and the output geometry.
type Config struct {
	Scene    *shade.Scene
	Camera   Camera
	Region   Region
	NThreads int
}

// Load reads and validates a TOML scene file, building the runtime
// objects. objects is supplied by the caller (constructed from whatever
// the command line or a richer scene-object format asked for) because
// spec.md treats per-primitive description as an out-of-scope external
// collaborator — this loader owns camera/canvas/lights/quality only.
func Load(path string, objects []object.Object) (*Config, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return nil, fmt.Errorf("scenecfg: decode %s: %w", path, err)
	}
	return build(fc, objects)
}

func build(fc fileConfig, objects []object.Object) (*Config, error) {
	if fc.Canvas.Width <= 0 || fc.Canvas.Height <= 0 {
		return nil, fmt.Errorf("scenecfg: invalid scene: canvas width/height must be positive")
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("scenecfg: invalid scene: no objects")
	}

	fovX, fovY := fc.Camera.FOVX, fc.Camera.FOVY
	if fovX == 0 {
		fovX = 60.0
	}
	if fovY == 0 {
		fovY = 60.0 * float64(fc.Canvas.Height) / float64(fc.Canvas.Width)
	}
	cam := NewPerspectiveCamera(
		vecmath.New(fc.Camera.Location[0], fc.Camera.Location[1], fc.Camera.Location[2]),
		vecmath.New(fc.Camera.LookAt[0], fc.Camera.LookAt[1], fc.Camera.LookAt[2]),
		fovX, fovY,
	)

	quality := parseQuality(fc.Render.Quality)
	reclimit := fc.Render.Reclimit
	if reclimit == 0 {
		reclimit = 5
	}
	adcBailout := fc.Render.AdcBailout
	if adcBailout == 0 {
		adcBailout = 1.0 / 255.0
	}

	lights := make([]shade.Light, 0, len(fc.Lights))
	for _, l := range fc.Lights {
		lights = append(lights, newPointLight(
			vecmath.New(l.Direction[0], l.Direction[1], l.Direction[2]),
			colorFrom(l.Color),
		))
	}

	scene := &shade.Scene{
		BVH:        bvhBuild(objects),
		Lights:     lights,
		Background: object.SolidPigment(colorFrom(fc.BackgroundRGB)),
		Quality:    quality,
		Reclimit:   reclimit,
		AdcBailout: adcBailout,
	}

	region := Region{
		X: fc.Canvas.RegionX, Y: fc.Canvas.RegionY,
		Width: fc.Canvas.Width, Height: fc.Canvas.Height,
		OuterWidth: fc.Canvas.OuterWidth, OuterHeight: fc.Canvas.OuterHeight,
	}
	if region.OuterWidth == 0 {
		region.OuterWidth = fc.Canvas.Width
	}
	if region.OuterHeight == 0 {
		region.OuterHeight = fc.Canvas.Height
	}

	nthreads := fc.Render.NThreads

	return &Config{Scene: scene, Camera: cam, Region: region, NThreads: nthreads}, nil
}

func parseQuality(keys []string) shade.Quality {
	if len(keys) == 0 {
		return shade.QAll
	}
	var q shade.Quality
	for _, k := range keys {
		switch k {
		case "pigment":
			q |= shade.QPigment
		case "lights":
			q |= shade.QLights
		case "finish":
			q |= shade.QFinish
		case "reflection":
			q |= shade.QReflection
		case "transparency":
			q |= shade.QTransparency
		}
	}
	return q
}
