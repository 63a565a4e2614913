package snakerat

// Engine owns the current World on behalf of a single game loop.
// It is not safe for concurrent use; the loop is its only writer.
type Engine struct {
	world World
}

// NewEngine starts a game with opts.
func NewEngine(opts Options) *Engine {
	return &Engine{world: NewWorld(opts)}
}

// Advance runs one tick and returns the resulting status.
func (e *Engine) Advance(req Request) Status {
	e.world = e.world.Advance(req)
	return e.world.Status()
}

// Restart replaces the world with a fresh start state.
func (e *Engine) Restart() {
	e.world = e.world.Restart()
}

// World returns the current world value.
func (e *Engine) World() World {
	return e.world
}

// Snapshot returns a read-only copy of the current world.
func (e *Engine) Snapshot() Snapshot {
	return e.world.Snapshot()
}
