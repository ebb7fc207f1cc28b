// Package lighting holds the Phong material and light rig and uploads them
// to a shader program.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniforms is the subset of a shader program the rig writes to.
type Uniforms interface {
	SetInt(name string, v int32)
	SetFloat(name string, v float32)
	SetVec3(name string, v mgl32.Vec3)
}

// Material is the surface response shared by every mesh.
type Material struct {
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// DirLight is a light at infinity shining along Direction.
type DirLight struct {
	Direction mgl32.Vec3 `yaml:"direction"`
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
}

// Config is the lighting section of the viewer configuration.
type Config struct {
	Material    Material           `yaml:"material"`
	DirLight    DirLight           `yaml:"dir_light"`
	PointLights []PointLightConfig `yaml:"point_lights"`
}

// DefaultConfig returns the stock material, one directional light and four
// point lights around the model.
func DefaultConfig() Config {
	return Config{
		Material: Material{
			Ambient:   mgl32.Vec3{0.3, 0.3, 0.3},
			Diffuse:   mgl32.Vec3{0.8, 0.8, 0.8},
			Specular:  mgl32.Vec3{1, 1, 1},
			Shininess: 32,
		},
		DirLight: DirLight{
			Direction: mgl32.Vec3{-0.2, -1.0, -0.3},
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:   mgl32.Vec3{0.5, 0.5, 0.5},
			Specular:  mgl32.Vec3{1, 1, 1},
		},
		PointLights: defaultPointLights(),
	}
}

// Rig is the resolved lighting for one model.
type Rig struct {
	Material Material
	Dir      DirLight
	Points   []PointLight
}

// NewRig resolves point light offsets against the model center. Lights
// beyond MaxPointLights are dropped.
func NewRig(cfg Config, center mgl32.Vec3) *Rig {
	n := min(len(cfg.PointLights), MaxPointLights)
	r := &Rig{
		Material: cfg.Material,
		Dir:      cfg.DirLight,
		Points:   make([]PointLight, n),
	}
	for i := range n {
		r.Points[i] = cfg.PointLights[i].At(center)
	}
	return r
}

// Apply writes material and light uniforms. The program must be in use.
func (r *Rig) Apply(u Uniforms) {
	u.SetVec3("material.ambient", r.Material.Ambient)
	u.SetVec3("material.diffuse", r.Material.Diffuse)
	u.SetVec3("material.specular", r.Material.Specular)
	u.SetFloat("material.shininess", r.Material.Shininess)

	u.SetVec3("dirLight.direction", r.Dir.Direction)
	u.SetVec3("dirLight.ambient", r.Dir.Ambient)
	u.SetVec3("dirLight.diffuse", r.Dir.Diffuse)
	u.SetVec3("dirLight.specular", r.Dir.Specular)

	u.SetInt("pointLightCount", int32(len(r.Points)))
	for i, p := range r.Points {
		p.apply(u, i)
	}
}
