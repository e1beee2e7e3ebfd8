package cubefield

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

type App struct {
	stages         []Stage
	systems        map[string][]systemFn
	startupSystems []systemFn
	resources      map[reflect.Type]any
	registry       *Registry
	quitRequested  bool

	// Command buffering
	pendingAdditions []pendingAdd
	pendingRemovals  []EntityId
	pendingAttaches  []pendingAttach
}

type pendingAdd struct {
	eid          EntityId
	capabilities []any
}

type pendingAttach struct {
	eid          EntityId
	capabilities []any
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

func (app *App) Registry() *Registry {
	return app.registry
}

// Quit asks the frame loop to stop after the current frame.
func (app *App) Quit() {
	app.quitRequested = true
}

// Run executes the startup systems once, then loops over the stages calling
// every scheduled system each frame until Quit is requested.
func (app *App) Run() {
	for _, system := range app.startupSystems {
		app.callSystem(system)
		app.FlushCommands()
	}

	for !app.quitRequested {
		for _, stage := range app.stages {
			for _, system := range app.systems[stage.Name] {
				app.callSystem(system)
			}
			app.FlushCommands()
		}
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

var typeOfCommands = reflect.TypeOf(Commands{})

// callSystem resolves each pointer parameter of the system function against
// the resource map (or injects *Commands) and invokes it.
func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve system dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}

func (app *App) FlushCommands() {
	if len(app.pendingAdditions) == 0 && len(app.pendingRemovals) == 0 && len(app.pendingAttaches) == 0 {
		return
	}

	// Removals first, so we don't attach to dead entities
	for _, eid := range app.pendingRemovals {
		app.registry.removeEntity(eid)
	}
	app.pendingRemovals = app.pendingRemovals[:0]

	for _, add := range app.pendingAdditions {
		app.registry.insertEntity(add.eid, add.capabilities...)
	}
	app.pendingAdditions = app.pendingAdditions[:0]

	for _, attach := range app.pendingAttaches {
		app.registry.attach(attach.eid, attach.capabilities...)
	}
	app.pendingAttaches = app.pendingAttaches[:0]
}
