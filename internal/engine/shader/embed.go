package shader

import _ "embed"

// LightingVertexShader transforms positions and passes world-space
// normals to the fragment stage.
//
//go:embed shaders/lighting.vert
var LightingVertexShader string

// LightingFragmentShader evaluates Phong shading for one directional light
// and up to eight point lights.
//
//go:embed shaders/lighting.frag
var LightingFragmentShader string
