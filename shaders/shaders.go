package shaders

import (
	_ "embed"
)

//go:embed cube_vertex.wgsl
var CubeVertexWGSL string

//go:embed cube_fragment.wgsl
var CubeFragmentWGSL string
