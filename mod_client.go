package cubefield

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ClientModule opens the window, brings up the GPU and installs the
// WindowState, GpuState and WgpuDevice resources.
type ClientModule struct {
	WindowWidth  int
	WindowHeight int
	WindowTitle  string
}

func (mod ClientModule) Install(app *App, cmd *Commands) {
	windowState := createWindowState(mod.WindowWidth, mod.WindowHeight, mod.WindowTitle)
	gpuState := createGpuState(windowState)

	cmd.AddResources(
		windowState,
		gpuState,
		NewWgpuDevice(gpuState),
	)

	app.UseSystem(
		System(windowEventsSystem).
			InStage(PreUpdate),
	)
}

func windowEventsSystem(state *WindowState, cmd *Commands) {
	if state.ShouldClose() {
		cmd.Quit()
		return
	}
	glfw.PollEvents()
}
