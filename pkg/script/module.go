package script

import (
	"fmt"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"trellis/pkg/element"
)

// State is the state of a script-defined component: a JavaScript value
// owned by the module's runtime.
type State struct {
	value goja.Value
}

// Export returns the state as Go values.
func (s *State) Export() any {
	if s == nil || s.value == nil {
		return nil
	}
	return s.value.Export()
}

// Module is a component definition whose script declares
//
//	function init(attributes) { return {...} }  // optional
//	function update(state, command) { ... }     // optional
//
// update returns the next state, or undefined for commands it does not
// handle. command is {name, payload}.
type Module struct {
	name   string
	vm     *goja.Runtime
	init   goja.Callable
	update goja.Callable
	logger *zap.Logger
}

// LoadModule evaluates src in a fresh runtime.
func LoadModule(name, src string, logger *zap.Logger) (*Module, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Module{name: name, vm: goja.New(), logger: logger}

	c := &consoleAPI{logger: logger, source: name}
	c.register(m.vm)

	if _, err := m.vm.RunScript(name, src); err != nil {
		return nil, fmt.Errorf("component %s: %w", name, err)
	}
	m.init, _ = goja.AssertFunction(m.vm.Get("init"))
	m.update, _ = goja.AssertFunction(m.vm.Get("update"))
	return m, nil
}

// Name returns the component name.
func (m *Module) Name() string { return m.name }

// InitialState calls init(attributes) with the attributes of the
// component's tag, or returns an empty object when the module defines no
// init.
func (m *Module) InitialState(attributes map[string]string) (*State, error) {
	if m.init == nil {
		return &State{value: m.vm.NewObject()}, nil
	}
	attrs := m.vm.NewObject()
	for k, v := range attributes {
		attrs.Set(k, v)
	}
	v, err := m.init(goja.Undefined(), attrs)
	if err != nil {
		return nil, fmt.Errorf("component %s: init: %w", m.name, err)
	}
	return &State{value: v}, nil
}

// Reduce is an element.Reducer over script state.
func (m *Module) Reduce(state *State, cmd element.Command) bool {
	if m.update == nil {
		return false
	}
	command := m.vm.NewObject()
	command.Set("name", cmd.Name)
	command.Set("payload", cmd.Payload)

	next, err := m.update(goja.Undefined(), state.value, command)
	if err != nil {
		m.logger.Error("component update failed",
			zap.String("component", m.name),
			zap.String("command", cmd.Name),
			zap.Error(err))
		return false
	}
	if goja.IsUndefined(next) || goja.IsNull(next) {
		return false
	}
	state.value = next
	return true
}

// Props flattens the state into placeholder values. Nested objects use
// dotted keys.
func (m *Module) Props(state *State) map[string]string {
	props := make(map[string]string)
	flatten("", state.Export(), props)
	return props
}

func flatten(prefix string, v any, out map[string]string) {
	obj, ok := v.(map[string]any)
	if !ok {
		if prefix != "" {
			out[prefix] = formatValue(v)
		}
		return
	}
	for k, child := range obj {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		flatten(key, child, out)
	}
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		// Whole numbers print without a fraction, like JavaScript.
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
	}
	return fmt.Sprint(v)
}
