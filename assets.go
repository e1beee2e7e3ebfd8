package cubefield

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"golang.org/x/image/colornames"
)

type AssetId string

type AssetServer struct {
	meshes    map[AssetId]*Mesh
	materials map[AssetId]MaterialAsset
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	app.addResources(&AssetServer{
		meshes:    make(map[AssetId]*Mesh),
		materials: make(map[AssetId]MaterialAsset),
	})
}

type MaterialAsset struct {
	version     uint
	name        string
	vertexSrc   string
	fragmentSrc string
}

func (m MaterialAsset) Name() string        { return m.name }
func (m MaterialAsset) VertexSrc() string   { return m.vertexSrc }
func (m MaterialAsset) FragmentSrc() string { return m.fragmentSrc }

// StoreMesh registers an assembled mesh and returns its asset id.
func (server *AssetServer) StoreMesh(mesh *Mesh) AssetId {
	id := makeAssetId()
	server.meshes[id] = mesh
	return id
}

func (server *AssetServer) Mesh(id AssetId) (*Mesh, bool) {
	mesh, ok := server.meshes[id]
	return mesh, ok
}

// LoadMaterial registers a named vertex/fragment shader source pair.
func (server *AssetServer) LoadMaterial(name string, vertexSrc, fragmentSrc string) AssetId {
	id := makeAssetId()
	server.materials[id] = MaterialAsset{
		version:     0,
		name:        name,
		vertexSrc:   vertexSrc,
		fragmentSrc: fragmentSrc,
	}
	return id
}

func (server *AssetServer) Material(id AssetId) (MaterialAsset, bool) {
	material, ok := server.materials[id]
	return material, ok
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}

// StockColor resolves an SVG 1.1 color name to a normalized RGB vector.
func StockColor(name string) (mgl32.Vec3, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return mgl32.Vec3{}, fmt.Errorf("unknown stock color %q", name)
	}
	return rgbaToVec3(c), nil
}

func rgbaToVec3(c color.RGBA) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(c.R) / 255.0,
		float32(c.G) / 255.0,
		float32(c.B) / 255.0,
	}
}
