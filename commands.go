package cubefield

type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// AddEntity spawns an entity carrying the given capabilities. The entity
// becomes visible to systems after the next command flush.
func (cmd *Commands) AddEntity(capabilities ...any) EntityId {
	eid := cmd.app.registry.nextEntityId()
	cmd.app.pendingAdditions = append(cmd.app.pendingAdditions, pendingAdd{
		eid:          eid,
		capabilities: capabilities,
	})
	return eid
}

func (cmd *Commands) AttachCapabilities(entityId EntityId, capabilities ...any) {
	cmd.app.pendingAttaches = append(cmd.app.pendingAttaches, pendingAttach{
		eid:          entityId,
		capabilities: capabilities,
	})
}

func (cmd *Commands) RemoveEntity(entityId EntityId) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, entityId)
}

func (cmd *Commands) Registry() *Registry {
	return cmd.app.registry
}

// Quit stops the frame loop after the current frame.
func (cmd *Commands) Quit() {
	cmd.app.Quit()
}
