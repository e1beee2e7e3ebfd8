package cubefield

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/cubefield/shaders"
)

func newTestAssetServer() *AssetServer {
	return &AssetServer{
		meshes:    make(map[AssetId]*Mesh),
		materials: make(map[AssetId]MaterialAsset),
	}
}

func TestAssetServer_StoreMeshRoundTrip(t *testing.T) {
	server := newTestAssetServer()
	dev := newFakeDevice()

	mesh, err := AssembleMesh(dev,
		BuildCubeVertices(1),
		BuildCubeIndices(),
		GenerateInstances(2, 60, NewSeededSource(1)),
	)
	require.NoError(t, err)

	id := server.StoreMesh(mesh)
	got, ok := server.Mesh(id)
	require.True(t, ok)
	assert.Same(t, mesh, got)

	_, ok = server.Mesh(AssetId("missing"))
	assert.False(t, ok)
}

func TestAssetServer_LoadMaterial(t *testing.T) {
	server := newTestAssetServer()

	id := server.LoadMaterial("cube_field", shaders.CubeVertexWGSL, shaders.CubeFragmentWGSL)
	material, ok := server.Material(id)
	require.True(t, ok)

	assert.Equal(t, "cube_field", material.Name())
	assert.Contains(t, material.VertexSrc(), "vs_main")
	assert.Contains(t, material.FragmentSrc(), "fs_main")

	// two materials never share an id
	id2 := server.LoadMaterial("cube_field", shaders.CubeVertexWGSL, shaders.CubeFragmentWGSL)
	assert.NotEqual(t, id, id2)
}

func TestStockColor(t *testing.T) {
	red, err := StockColor("red")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, red)

	white, err := StockColor("white")
	require.NoError(t, err)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, white)

	_, err = StockColor("not-a-color")
	assert.Error(t, err)
}
