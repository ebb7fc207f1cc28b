package shader

import (
	"errors"
	"strings"
	"testing"
)

func TestErrorMessage(t *testing.T) {
	var err error = &Error{Stage: "fragment", Log: "0:12: syntax error\n\x00"}

	if got, want := err.Error(), "fragment shader: 0:12: syntax error"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	var se *Error
	if !errors.As(err, &se) || se.Stage != "fragment" {
		t.Errorf("errors.As failed to recover stage from %v", err)
	}
}

func TestEmbeddedSourcesDeclareUniformContract(t *testing.T) {
	uniforms := []string{
		"uniform mat4 projection",
		"uniform mat4 view",
		"uniform mat4 model",
		"uniform vec3 viewPos",
		"uniform Material material",
		"uniform DirLight dirLight",
		"uniform PointLight pointLights[MAX_POINT_LIGHTS]",
		"uniform int pointLightCount",
	}
	src := LightingVertexShader + LightingFragmentShader
	for _, u := range uniforms {
		if !strings.Contains(src, u) {
			t.Errorf("embedded shaders missing %q", u)
		}
	}
	if !strings.Contains(LightingFragmentShader, "#define MAX_POINT_LIGHTS 8") {
		t.Error("fragment shader point light capacity is not 8")
	}
}
