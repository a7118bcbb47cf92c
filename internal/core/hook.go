package core

// HookPos names a point of the simulation where hooks are invoked.
type HookPos struct {
	Name string
}

// HookCtx is passed to a hook when it is invoked. Domain is the object that
// invoked the hook and Item is what it was processing, for example the
// appended Event.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
}

// Hookable is implemented by everything that hooks can observe.
type Hookable interface {
	AcceptHook(hook Hook)
}

// Hook observes a Hookable. Hooks must not change the simulation state.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase keeps a list of hooks and invokes them in registration order.
type HookableBase struct {
	Hooks []Hook
}

func NewHookableBase() *HookableBase {
	return &HookableBase{Hooks: make([]Hook, 0)}
}

// AcceptHook registers a hook.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.Hooks = append(h.Hooks, hook)
}

// InvokeHook calls every registered hook with ctx.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.Hooks {
		hook.Func(ctx)
	}
}
