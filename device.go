package cubefield

// BufferKind selects which bind point a GPU buffer is created for.
type BufferKind int

const (
	BufferKindVertex BufferKind = iota
	BufferKindIndex
	BufferKindUniform
)

// UsageHint tells the driver whether buffer contents will change after
// upload. It is an optimization hint, not an enforced invariant.
type UsageHint int

const (
	UsageStatic UsageHint = iota
	UsageDynamic
)

// StepMode is the step rate of a vertex stream: per-vertex streams advance
// once per drawn vertex, per-instance streams once per instance.
type StepMode int

const (
	StepPerVertex StepMode = iota
	StepPerInstance
)

// AttributeFormat is the component layout of a single vertex attribute.
type AttributeFormat int

const (
	FormatFloat32x2 AttributeFormat = iota
	FormatFloat32x3
	FormatFloat32x4
)

// VertexAttribute declares one attribute within a stream.
type VertexAttribute struct {
	Name           string
	Format         AttributeFormat
	ByteOffset     uint64
	ShaderLocation uint32
}

// VertexStream declares one binding stream: a stride, a step rate and the
// attributes sourced from it.
type VertexStream struct {
	Stride     uint64
	StepMode   StepMode
	Attributes []VertexAttribute
}

// VertexLayout is the full two-dimensional attribute declaration of a mesh.
// Stream order is binding order: stream i is bound to vertex buffer slot i.
type VertexLayout struct {
	Streams []VertexStream
}

// Buffer is an uploaded GPU buffer handle.
type Buffer interface {
	Size() uint64
	Release()
}

// Program is a compiled and linked shader program handle.
type Program interface {
	Name() string
	Release()
}

// GraphicsDevice is the capability set this package needs from the host
// graphics backend: buffer allocation and shader program compilation.
// The surrounding engine owns the device; implementations only allocate.
type GraphicsDevice interface {
	// CreateBuffer uploads data and returns a handle. Errors are reported
	// as *BufferAllocationError.
	CreateBuffer(label string, kind BufferKind, data []byte, hint UsageHint) (Buffer, error)

	// CompileProgram compiles the vertex/fragment source pair against the
	// given layout. A failed compile or link is reported as
	// *ShaderCompilationError carrying the backend diagnostic; no program
	// handle is registered in that case.
	CompileProgram(name string, vertexSrc, fragmentSrc string, layout VertexLayout) (Program, error)
}

// CubeVertexLayout returns the two-stream layout of the instanced cube:
// stream 0 per-vertex (position, normal), stream 1 per-instance
// (offset, color), both 24 bytes wide.
func CubeVertexLayout() VertexLayout {
	return VertexLayout{
		Streams: []VertexStream{
			{
				Stride:   24,
				StepMode: StepPerVertex,
				Attributes: []VertexAttribute{
					{Name: "position", Format: FormatFloat32x3, ByteOffset: 0, ShaderLocation: 0},
					{Name: "normal", Format: FormatFloat32x3, ByteOffset: 12, ShaderLocation: 1},
				},
			},
			{
				Stride:   24,
				StepMode: StepPerInstance,
				Attributes: []VertexAttribute{
					{Name: "instance_offset", Format: FormatFloat32x3, ByteOffset: 0, ShaderLocation: 2},
					{Name: "instance_color", Format: FormatFloat32x3, ByteOffset: 12, ShaderLocation: 3},
				},
			},
		},
	}
}
