package types

// Stack is the scope model: a stack of local-scope maps for names introduced
// by a function body, an if branch, or a while body, plus one flat map for
// globals and one flat map for functions (functions live in their own
// namespace and are never shadowed by locals).
type Stack struct {
	scopes  []map[string]*Slot
	globals map[string]*Slot
	funcs   map[string]*Func
}

// NewStack returns an empty Stack with no scopes pushed.
func NewStack() *Stack {
	return &Stack{
		globals: make(map[string]*Slot),
		funcs:   make(map[string]*Func),
	}
}

// Push opens a new innermost scope, entered when starting a function body,
// an if-then, an if-else, or a while body.
func (s *Stack) Push() {
	s.scopes = append(s.scopes, make(map[string]*Slot))
}

// Pop closes the innermost scope.
func (s *Stack) Pop() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Declare binds name to slot in the innermost scope. Returns false if name
// is already bound in that same scope (a same-scope redefinition error);
// shadowing a binding in an outer scope is always allowed.
func (s *Stack) Declare(name string, slot *Slot) bool {
	cur := s.scopes[len(s.scopes)-1]
	if _, exists := cur[name]; exists {
		return false
	}
	cur[name] = slot
	return true
}

// DeclareGlobal binds name in the flat global map. Returns false if a
// global with this name already exists.
func (s *Stack) DeclareGlobal(name string, slot *Slot) bool {
	if _, exists := s.globals[name]; exists {
		return false
	}
	s.globals[name] = slot
	return true
}

// Lookup resolves name by walking scopes innermost to outermost, falling
// back to globals.
func (s *Stack) Lookup(name string) (*Slot, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if slot, ok := s.scopes[i][name]; ok {
			return slot, true
		}
	}
	slot, ok := s.globals[name]
	return slot, ok
}

// DeclareFunc registers a new function name. If the name already exists,
// DeclareFunc does not overwrite it: it returns the existing entry and
// false, letting the caller decide whether the new declaration's signature
// is compatible.
func (s *Stack) DeclareFunc(f *Func) (existing *Func, isNew bool) {
	if e, ok := s.funcs[f.Name]; ok {
		return e, false
	}
	s.funcs[f.Name] = f
	return f, true
}

// Func looks up a function by name.
func (s *Stack) Func(name string) (*Func, bool) {
	f, ok := s.funcs[name]
	return f, ok
}
