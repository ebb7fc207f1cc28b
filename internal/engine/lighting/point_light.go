package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the maximum number of point lights supported in shaders.
const MaxPointLights = 8

// PointLight is a positioned light with distance attenuation
// 1 / (Constant + Linear*d + Quadratic*d^2).
type PointLight struct {
	Position  mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Constant  float32
	Linear    float32
	Quadratic float32
}

// PointLightConfig places a light relative to the model center.
type PointLightConfig struct {
	Offset    mgl32.Vec3 `yaml:"offset"`
	Ambient   mgl32.Vec3 `yaml:"ambient"`
	Diffuse   mgl32.Vec3 `yaml:"diffuse"`
	Specular  mgl32.Vec3 `yaml:"specular"`
	Constant  float32    `yaml:"constant"`
	Linear    float32    `yaml:"linear"`
	Quadratic float32    `yaml:"quadratic"`
}

// At resolves the light for a model centered at center.
func (c PointLightConfig) At(center mgl32.Vec3) PointLight {
	return PointLight{
		Position:  center.Add(c.Offset),
		Ambient:   c.Ambient,
		Diffuse:   c.Diffuse,
		Specular:  c.Specular,
		Constant:  c.Constant,
		Linear:    c.Linear,
		Quadratic: c.Quadratic,
	}
}

func (l PointLight) apply(u Uniforms, i int) {
	prefix := fmt.Sprintf("pointLights[%d].", i)
	u.SetVec3(prefix+"position", l.Position)
	u.SetVec3(prefix+"ambient", l.Ambient)
	u.SetVec3(prefix+"diffuse", l.Diffuse)
	u.SetVec3(prefix+"specular", l.Specular)
	u.SetFloat(prefix+"constant", l.Constant)
	u.SetFloat(prefix+"linear", l.Linear)
	u.SetFloat(prefix+"quadratic", l.Quadratic)
}

// defaultPointLights surrounds the model on +X, -X, +Y and +Z.
func defaultPointLights() []PointLightConfig {
	offsets := []mgl32.Vec3{{5, 0, 0}, {-5, 0, 0}, {0, 5, 0}, {0, 0, 5}}
	lights := make([]PointLightConfig, len(offsets))
	for i, off := range offsets {
		lights[i] = PointLightConfig{
			Offset:    off,
			Ambient:   mgl32.Vec3{0.2, 0.2, 0.2},
			Diffuse:   mgl32.Vec3{0.5, 0.5, 0.5},
			Specular:  mgl32.Vec3{1, 1, 1},
			Constant:  1.0,
			Linear:    0.09,
			Quadratic: 0.032,
		}
	}
	return lights
}
