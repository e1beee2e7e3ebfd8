package cubefield

import (
	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gekko3d/cubefield/shaders"
)

// CubeFieldModule builds a field of randomly placed, randomly colored unit
// cubes rendered with a single instanced draw call per frame.
type CubeFieldModule struct {
	CubeSize      float32 // side length of the base cube, default 1
	InstanceCount int     // default 4000
	Spread        float32 // side of the placement volume, default 60
	Seed          int64   // 0 keeps the unseeded shared random source
	ClearColor    string  // stock color name, default "midnightblue"
}

type cubeFieldSettings struct {
	cubeSize      float32
	instanceCount int
	spread        float32
	rand          RandomSource
	clearColor    wgpu.Color
}

// RenderFieldCapability makes an entity drawable as one instanced field.
type RenderFieldCapability struct {
	Mesh      *Mesh
	Program   *WgpuProgram
	BindGroup *wgpu.BindGroup
}

type cubeFieldState struct {
	cameraBuffer *wgpuBuffer
	clearColor   wgpu.Color
}

func (mod CubeFieldModule) Install(app *App, cmd *Commands) {
	settings := &cubeFieldSettings{
		cubeSize:      1,
		instanceCount: 4000,
		spread:        60,
	}
	if mod.CubeSize > 0 {
		settings.cubeSize = mod.CubeSize
	}
	if mod.InstanceCount > 0 {
		settings.instanceCount = mod.InstanceCount
	}
	if mod.Spread > 0 {
		settings.spread = mod.Spread
	}
	if mod.Seed != 0 {
		settings.rand = NewSeededSource(mod.Seed)
	}

	clearName := mod.ClearColor
	if clearName == "" {
		clearName = "midnightblue"
	}
	clear, err := StockColor(clearName)
	if err != nil {
		panic(err)
	}
	settings.clearColor = wgpu.Color{
		R: float64(clear.X()),
		G: float64(clear.Y()),
		B: float64(clear.Z()),
		A: 1.0,
	}

	cmd.AddResources(settings)

	app.UseSystem(
		System(setupCubeField).
			OnStartup(),
	)
	app.UseSystem(
		System(renderCubeField).
			InStage(Render),
	)
}

// setupCubeField runs once on startup: geometry, instance data, GPU buffers,
// shader program, camera uniform and bind group. Any failure here is fatal
// for scene construction.
func setupCubeField(settings *cubeFieldSettings, dev *WgpuDevice, assets *AssetServer, cmd *Commands) {
	vertices := BuildCubeVertices(settings.cubeSize)
	indices := BuildCubeIndices()
	instances := GenerateInstances(settings.instanceCount, settings.spread, settings.rand)

	mesh, err := AssembleMesh(dev, vertices, indices, instances)
	if err != nil {
		panic(err)
	}
	assets.StoreMesh(mesh)

	materialId := assets.LoadMaterial("cube_field", shaders.CubeVertexWGSL, shaders.CubeFragmentWGSL)
	material, _ := assets.Material(materialId)

	program, err := dev.CompileProgram(material.Name(), material.VertexSrc(), material.FragmentSrc(), mesh.Layout())
	if err != nil {
		panic(err)
	}
	wgpuProgram := program.(*WgpuProgram)

	cameraBuffer, err := dev.CreateBuffer("Camera Uniform", BufferKindUniform, make([]byte, 64), UsageDynamic)
	if err != nil {
		panic(err)
	}

	bindGroupLayout := wgpuProgram.Pipeline().GetBindGroupLayout(0)
	defer bindGroupLayout.Release()
	bindGroup, err := dev.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Camera Bind Group",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{Binding: 0, Buffer: cameraBuffer.(*wgpuBuffer).Handle(), Size: wgpu.WholeSize},
		},
	})
	if err != nil {
		panic(err)
	}

	cmd.AddResources(&cubeFieldState{
		cameraBuffer: cameraBuffer.(*wgpuBuffer),
		clearColor:   settings.clearColor,
	})
	cmd.AddEntity(&RenderFieldCapability{
		Mesh:      mesh,
		Program:   wgpuProgram,
		BindGroup: bindGroup,
	})
}

// renderCubeField renders a single frame: one render pass, one instanced
// draw call per field entity.
func renderCubeField(gpuState *GpuState, window *WindowState, camera *Camera, state *cubeFieldState, cmd *Commands) {
	aspect := float32(window.WindowWidth) / float32(window.WindowHeight)
	viewProj := camera.ViewProjection(aspect)
	if err := gpuState.queue.WriteBuffer(state.cameraBuffer.Handle(), 0, wgpu.ToBytes(viewProj[:])); err != nil {
		panic(err)
	}

	nextTexture, err := gpuState.surface.GetCurrentTexture()
	if err != nil {
		panic(err)
	}
	view, err := nextTexture.CreateView(nil)
	if err != nil {
		panic(err)
	}
	defer view.Release()
	encoder, err := gpuState.device.CreateCommandEncoder(nil)
	if err != nil {
		panic(err)
	}
	defer encoder.Release()

	renderPass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: state.clearColor,
			},
		},
	})
	defer renderPass.Release()

	EachCapability[RenderFieldCapability](cmd.Registry(), func(eid EntityId, field *RenderFieldCapability) bool {
		mesh := field.Mesh
		renderPass.SetPipeline(field.Program.Pipeline())
		renderPass.SetBindGroup(0, field.BindGroup, nil)
		renderPass.SetVertexBuffer(0, wgpuHandle(mesh.VertexBuffer()), 0, wgpu.WholeSize)
		renderPass.SetVertexBuffer(1, wgpuHandle(mesh.InstanceBuffer()), 0, wgpu.WholeSize)
		renderPass.SetIndexBuffer(wgpuHandle(mesh.IndexBuffer()), wgpu.IndexFormatUint16, 0, wgpu.WholeSize)
		for _, r := range mesh.DrawRanges() {
			renderPass.DrawIndexed(r.Count, mesh.InstanceCount(), r.Start, 0, 0)
		}
		return true
	})

	if err := renderPass.End(); err != nil {
		panic(err)
	}

	cmdBuffer, err := encoder.Finish(nil)
	if err != nil {
		panic(err)
	}
	defer cmdBuffer.Release()

	gpuState.queue.Submit(cmdBuffer)
	gpuState.surface.Present()
}

func wgpuHandle(b Buffer) *wgpu.Buffer {
	return b.(*wgpuBuffer).Handle()
}
