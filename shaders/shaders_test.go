package shaders

import (
	"strings"
	"testing"
)

func TestCubeShaderSources(t *testing.T) {
	if !strings.Contains(CubeVertexWGSL, "fn vs_main") {
		t.Errorf("vertex source is missing the vs_main entry point")
	}
	if !strings.Contains(CubeFragmentWGSL, "fn fs_main") {
		t.Errorf("fragment source is missing the fs_main entry point")
	}

	// per-instance attributes live at locations 2 and 3
	for _, location := range []string{"@location(2)", "@location(3)"} {
		if !strings.Contains(CubeVertexWGSL, location) {
			t.Errorf("vertex source is missing instance attribute %s", location)
		}
	}

	// both stages must parse as one module: braces balance across the pair
	combined := CubeVertexWGSL + CubeFragmentWGSL
	if strings.Count(combined, "{") != strings.Count(combined, "}") {
		t.Errorf("combined shader module has unbalanced braces")
	}
}
