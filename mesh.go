package cubefield

// DrawRange is a contiguous run of indices submitted in one draw call.
type DrawRange struct {
	Start uint32
	Count uint32
}

// Mesh owns the three GPU buffers of an instanced geometry (vertex, instance,
// index), the vertex layout and the index sub-ranges. Built once at scene
// setup, never mutated afterwards.
type Mesh struct {
	vertexBuffer   Buffer
	instanceBuffer Buffer
	indexBuffer    Buffer

	layout        VertexLayout
	drawRanges    []DrawRange
	vertexCount   uint32
	indexCount    uint32
	instanceCount uint32
}

func (m *Mesh) VertexBuffer() Buffer    { return m.vertexBuffer }
func (m *Mesh) InstanceBuffer() Buffer  { return m.instanceBuffer }
func (m *Mesh) IndexBuffer() Buffer     { return m.indexBuffer }
func (m *Mesh) Layout() VertexLayout    { return m.layout }
func (m *Mesh) DrawRanges() []DrawRange { return m.drawRanges }
func (m *Mesh) VertexCount() uint32     { return m.vertexCount }
func (m *Mesh) IndexCount() uint32      { return m.indexCount }
func (m *Mesh) InstanceCount() uint32   { return m.instanceCount }

// Destroy releases the GPU buffers. The mesh is unusable afterwards.
func (m *Mesh) Destroy() {
	if m.vertexBuffer != nil {
		m.vertexBuffer.Release()
		m.vertexBuffer = nil
	}
	if m.instanceBuffer != nil {
		m.instanceBuffer.Release()
		m.instanceBuffer = nil
	}
	if m.indexBuffer != nil {
		m.indexBuffer.Release()
		m.indexBuffer = nil
	}
}

// AssembleMesh uploads the vertex, instance and index buffers with static
// usage, declares the two-stream cube layout and registers one draw range
// covering all indices. An instanced draw with zero geometry or zero
// instances is meaningless, so empty inputs are rejected before any upload.
func AssembleMesh(dev GraphicsDevice, vertices []CubeVertex, indices []uint16, instances []CubeInstance) (*Mesh, error) {
	if len(vertices) == 0 {
		return nil, &GeometryConstructionError{Reason: "no vertices"}
	}
	if len(indices) == 0 {
		return nil, &GeometryConstructionError{Reason: "no indices"}
	}
	if len(instances) == 0 {
		return nil, &GeometryConstructionError{Reason: "no instances"}
	}
	for _, idx := range indices {
		if int(idx) >= len(vertices) {
			return nil, &GeometryConstructionError{Reason: "index out of vertex range"}
		}
	}

	mesh := &Mesh{
		layout:        CubeVertexLayout(),
		drawRanges:    []DrawRange{{Start: 0, Count: uint32(len(indices))}},
		vertexCount:   uint32(len(vertices)),
		indexCount:    uint32(len(indices)),
		instanceCount: uint32(len(instances)),
	}

	var err error
	mesh.vertexBuffer, err = dev.CreateBuffer("Cube Vertex Buffer", BufferKindVertex, cubeVerticesToBytes(vertices), UsageStatic)
	if err != nil {
		return nil, err
	}
	mesh.instanceBuffer, err = dev.CreateBuffer("Cube Instance Buffer", BufferKindVertex, cubeInstancesToBytes(instances), UsageStatic)
	if err != nil {
		mesh.Destroy()
		return nil, err
	}
	mesh.indexBuffer, err = dev.CreateBuffer("Cube Index Buffer", BufferKindIndex, indicesToBytes(indices), UsageStatic)
	if err != nil {
		mesh.Destroy()
		return nil, err
	}
	return mesh, nil
}
