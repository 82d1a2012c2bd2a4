package desim

// HookPos names a site in the scheduler where hooks can be invoked.
type HookPos struct {
	Name string
}

// HookCtx carries the information about the site a hook was triggered at.
type HookCtx struct {
	Domain Hookable
	Pos    *HookPos
	Item   interface{}
	Detail interface{}
}

// Hookable accepts Hooks.
type Hookable interface {
	AcceptHook(hook Hook)
}

// HookPosBeforeEvent fires immediately before the scheduler processes an
// event (before any observer resumes or callback runs).
var HookPosBeforeEvent = &HookPos{Name: "BeforeEvent"}

// HookPosAfterEvent fires immediately after the scheduler finishes
// processing an event.
var HookPosAfterEvent = &HookPos{Name: "AfterEvent"}

// Hook is a short piece of program a Hookable object can invoke.
type Hook interface {
	Func(ctx HookCtx)
}

// HookableBase provides the bookkeeping needed to implement Hookable.
type HookableBase struct {
	hooks []Hook
}

// AcceptHook registers a hook. Hooks run in registration order.
func (h *HookableBase) AcceptHook(hook Hook) {
	h.hooks = append(h.hooks, hook)
}

// InvokeHook runs every registered hook with ctx, in registration order.
func (h *HookableBase) InvokeHook(ctx HookCtx) {
	for _, hook := range h.hooks {
		hook.Func(ctx)
	}
}
