package cubefield

import (
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	// glfw
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

func (s *WindowState) ShouldClose() bool { return s.windowGlfw.ShouldClose() }

type GpuState struct {
	surface       *wgpu.Surface
	adapter       *wgpu.Adapter
	device        *wgpu.Device
	queue         *wgpu.Queue
	surfaceConfig *wgpu.SurfaceConfiguration
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string) *WindowState {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		panic(err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI) // Important: tell GLFW we don't want OpenGL
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		panic(err)
	}

	return &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
}

func createGpuState(s *WindowState) *GpuState {
	instance := wgpu.CreateInstance(nil)
	defer instance.Release()
	// wraps GLFW window into a wgpu surface.
	surface := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(s.windowGlfw))
	// finds a suitable GPU (discrete GPU preferred)
	adapter, err := instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
	})
	if err != nil {
		panic(err)
	}
	// allocates the device and command queue
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:            "Main Device",
		RequiredFeatures: nil,
		RequiredLimits:   nil,
	})
	if err != nil {
		panic(err)
	}
	queue := device.GetQueue()

	caps := surface.GetCapabilities(adapter)
	// defines how the swapchain behaves (size, format, vsync)
	surfaceConfig := wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      caps.Formats[0],
		Width:       uint32(s.WindowWidth),
		Height:      uint32(s.WindowHeight),
		PresentMode: wgpu.PresentModeFifo, // vsync
		AlphaMode:   caps.AlphaModes[0],
	}

	surface.Configure(adapter, device, &surfaceConfig)

	return &GpuState{
		surface:       surface,
		adapter:       adapter,
		device:        device,
		queue:         queue,
		surfaceConfig: &surfaceConfig,
	}
}

// WgpuDevice implements GraphicsDevice on top of a webgpu device.
type WgpuDevice struct {
	device       *wgpu.Device
	queue        *wgpu.Queue
	targetFormat wgpu.TextureFormat
}

func NewWgpuDevice(gpu *GpuState) *WgpuDevice {
	return &WgpuDevice{
		device:       gpu.device,
		queue:        gpu.queue,
		targetFormat: gpu.surfaceConfig.Format,
	}
}

type wgpuBuffer struct {
	buffer *wgpu.Buffer
}

func (b *wgpuBuffer) Size() uint64 { return b.buffer.GetSize() }
func (b *wgpuBuffer) Release()     { b.buffer.Release() }

// Handle returns the underlying wgpu buffer for render pass binding.
func (b *wgpuBuffer) Handle() *wgpu.Buffer { return b.buffer }

// WgpuProgram is a compiled shader pair baked into a render pipeline. In
// webgpu the link step is pipeline creation, so the pipeline is the program.
type WgpuProgram struct {
	name     string
	pipeline *wgpu.RenderPipeline
}

func (p *WgpuProgram) Name() string                   { return p.name }
func (p *WgpuProgram) Release()                       { p.pipeline.Release() }
func (p *WgpuProgram) Pipeline() *wgpu.RenderPipeline { return p.pipeline }

func (d *WgpuDevice) CreateBuffer(label string, kind BufferKind, data []byte, hint UsageHint) (Buffer, error) {
	var usage wgpu.BufferUsage
	switch kind {
	case BufferKindVertex:
		usage = wgpu.BufferUsageVertex
	case BufferKindIndex:
		usage = wgpu.BufferUsageIndex
	case BufferKindUniform:
		usage = wgpu.BufferUsageUniform
	}
	if hint == UsageDynamic {
		usage |= wgpu.BufferUsageCopyDst
	}

	buffer, err := d.device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label,
		Contents: data,
		Usage:    usage,
	})
	if err != nil {
		return nil, &BufferAllocationError{Label: label, Err: err}
	}
	return &wgpuBuffer{buffer: buffer}, nil
}

func (d *WgpuDevice) CompileProgram(name string, vertexSrc, fragmentSrc string, layout VertexLayout) (Program, error) {
	// Both stages live in one WGSL module; the fragment source references
	// declarations from the vertex source.
	shader, err := d.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: vertexSrc + "\n" + fragmentSrc},
	})
	if err != nil {
		return nil, &ShaderCompilationError{Name: name, Diagnostic: err.Error()}
	}
	defer shader.Release()

	pipeline, err := d.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label: name,
		Vertex: wgpu.VertexState{
			Module:     shader,
			EntryPoint: "vs_main",
			Buffers:    toWgpuVertexLayouts(layout),
		},
		Fragment: &wgpu.FragmentState{
			Module:     shader,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    d.targetFormat,
					Blend:     nil,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  wgpu.CullModeBack,
		},
		DepthStencil: nil,
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return nil, &ShaderCompilationError{Name: name, Diagnostic: err.Error()}
	}
	return &WgpuProgram{name: name, pipeline: pipeline}, nil
}

func toWgpuVertexLayouts(layout VertexLayout) []wgpu.VertexBufferLayout {
	layouts := make([]wgpu.VertexBufferLayout, 0, len(layout.Streams))
	for _, stream := range layout.Streams {
		attributes := make([]wgpu.VertexAttribute, 0, len(stream.Attributes))
		for _, attr := range stream.Attributes {
			attributes = append(attributes, wgpu.VertexAttribute{
				ShaderLocation: attr.ShaderLocation,
				Offset:         attr.ByteOffset,
				Format:         toWgpuFormat(attr.Format),
			})
		}
		layouts = append(layouts, wgpu.VertexBufferLayout{
			ArrayStride: stream.Stride,
			StepMode:    toWgpuStepMode(stream.StepMode),
			Attributes:  attributes,
		})
	}
	return layouts
}

func toWgpuFormat(format AttributeFormat) wgpu.VertexFormat {
	switch format {
	case FormatFloat32x2:
		return wgpu.VertexFormatFloat32x2
	case FormatFloat32x3:
		return wgpu.VertexFormatFloat32x3
	case FormatFloat32x4:
		return wgpu.VertexFormatFloat32x4
	default:
		panic("unsupported vertex attribute format")
	}
}

func toWgpuStepMode(mode StepMode) wgpu.VertexStepMode {
	switch mode {
	case StepPerVertex:
		return wgpu.VertexStepModeVertex
	case StepPerInstance:
		return wgpu.VertexStepModeInstance
	default:
		panic("unsupported vertex step mode")
	}
}
