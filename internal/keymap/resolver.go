package keymap

// Resolver is the per-screen key table the app dispatches through.
type Resolver struct {
	bindings map[string]Action
	byAction map[Action][]string // feeds the help popup
}

// NewResolver indexes bindings by key and by action. Later bindings win
// on key conflicts, which is how context bindings shadow globals.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// ForContext creates a resolver for one screen context. Context bindings
// are added after globals so they win on conflicting keys. The picker
// context leaves globals out since printable keys feed its filter input.
func ForContext(context string) *Resolver {
	var bindings []Binding
	if context != "picker" {
		bindings = append(bindings, ByContext("global")...)
	}
	bindings = append(bindings, ByContext(context)...)
	return NewResolver(bindings)
}

// Resolve returns the action bound to key, or the empty action.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns every key bound to action, in binding order.
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// dedupe drops repeated keys while keeping first-seen order.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
