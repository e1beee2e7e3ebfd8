package cubefield

import (
	"math/rand"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// CubeInstance matches the WGSL per-instance attributes: offset at byte
// offset 0, color at byte offset 12, stride 24.
type CubeInstance struct {
	Offset mgl32.Vec3
	Color  mgl32.Vec3
}

// RandomSource supplies uniform floats in [0,1). Injecting a seeded source
// makes instance generation reproducible; the default shared source is not.
type RandomSource interface {
	Float32() float32
}

type lockedRandSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func (s *lockedRandSource) Float32() float32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float32()
}

// NewSeededSource returns a RandomSource driven by a seeded generator.
func NewSeededSource(seed int64) RandomSource {
	return &lockedRandSource{rnd: rand.New(rand.NewSource(seed))}
}

type globalRandSource struct{}

func (globalRandSource) Float32() float32 { return rand.Float32() }

// GenerateInstances draws count instance records from src. Offsets are
// uniform within a cube of side spread centered at the origin, colors uniform
// in [0,1] per component. A nil src uses the shared global generator, so two
// calls will not produce the same field.
func GenerateInstances(count int, spread float32, src RandomSource) []CubeInstance {
	if src == nil {
		src = globalRandSource{}
	}
	instances := make([]CubeInstance, 0, count)
	for i := 0; i < count; i++ {
		instances = append(instances, CubeInstance{
			Offset: mgl32.Vec3{
				(src.Float32() - 0.5) * spread,
				(src.Float32() - 0.5) * spread,
				(src.Float32() - 0.5) * spread,
			},
			Color: mgl32.Vec3{
				src.Float32(),
				src.Float32(),
				src.Float32(),
			},
		})
	}
	return instances
}
