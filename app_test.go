package cubefield

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockResource1 struct {
	name string
}
type MockResource2 struct {
	name string
}

func TestApp_addResources(t *testing.T) {
	app := NewAppBuilder().Build()

	resource1 := &MockResource1{name: "Resource1"}
	app.addResources(resource1)

	assert.Contains(t, app.resources, reflect.TypeOf(resource1).Elem(), "Resource1 should be in resources map.")

	// Adding the same resource type twice is a programming error
	require.PanicsWithValue(t, fmt.Sprintf("%s is already in resources", reflect.TypeOf(resource1)), func() {
		app.addResources(resource1)
	})

	resource2 := &MockResource2{name: "Resource2"}
	app.addResources(resource2)
	assert.Contains(t, app.resources, reflect.TypeOf(resource2).Elem(), "Resource2 should be in resources map.")
}

func TestApp_SystemDependencyInjection(t *testing.T) {
	app := NewAppBuilder().Build()
	app.addResources(&MockResource1{name: "injected"})

	var seen string
	app.callSystem(func(res *MockResource1, cmd *Commands) {
		seen = res.name
	})

	assert.Equal(t, "injected", seen)
}

func TestApp_SystemUnresolvableDependencyPanics(t *testing.T) {
	app := NewAppBuilder().Build()

	require.Panics(t, func() {
		app.callSystem(func(res *MockResource2) {})
	})
}

func TestApp_RunStartupThenFramesUntilQuit(t *testing.T) {
	app := NewAppBuilder().Build()

	startupRuns := 0
	frameRuns := 0

	app.UseSystem(
		System(func(cmd *Commands) {
			startupRuns++
		}).OnStartup(),
	)
	app.UseSystem(
		System(func(cmd *Commands) {
			frameRuns++
			if frameRuns == 3 {
				cmd.Quit()
			}
		}).InStage(Render),
	)

	app.Run()

	assert.Equal(t, 1, startupRuns, "startup systems run exactly once")
	assert.Equal(t, 3, frameRuns)
}

func TestApp_CommandsFlushBetweenStages(t *testing.T) {
	app := NewAppBuilder().Build()
	cmd := app.Commands()

	eid := cmd.AddEntity(&MockCapability{Value: 5})
	assert.False(t, app.registry.Alive(eid), "entity buffered until flush")

	app.FlushCommands()
	assert.True(t, app.registry.Alive(eid))

	cmd.RemoveEntity(eid)
	app.FlushCommands()
	assert.False(t, app.registry.Alive(eid))
}

func TestApp_UseStageInsertsRelative(t *testing.T) {
	app := NewAppBuilder().Build()
	custom := Stage{Name: "Culling"}

	app.UseStage(custom, BeforeStage(Render))

	idx := -1
	for i, s := range app.stages {
		if s.Name == custom.Name {
			idx = i
		}
	}
	require.NotEqual(t, -1, idx)
	assert.Equal(t, Render.Name, app.stages[idx+1].Name)
}
