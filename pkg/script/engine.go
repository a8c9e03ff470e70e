// Package script runs the JavaScript found in templates on goja: document
// scripts with console and dispatch() globals, and component modules that
// define their initial state and reducer in JavaScript.
package script

import (
	"errors"
	"fmt"

	"github.com/dop251/goja"
	"go.uber.org/zap"

	"trellis/pkg/element"
)

// ErrNoSuchComponent is returned when a script dispatches to a component
// that is not mounted.
var ErrNoSuchComponent = errors.New("no such component")

// Engine executes document scripts against a mounted element tree.
type Engine struct {
	vm     *goja.Runtime
	logger *zap.Logger
	root   element.Element
	// failure holds the Go error behind the exception being thrown.
	failure error
}

// New creates an engine with console and dispatch globals. A nil logger
// discards console output.
func New(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	e := &Engine{vm: goja.New(), logger: logger}

	c := &consoleAPI{logger: logger, source: "document"}
	c.register(e.vm)
	e.vm.Set("dispatch", e.dispatch)

	return e
}

// Mount sets the tree that dispatch() resolves component names against.
func (e *Engine) Mount(root element.Element) {
	e.root = root
}

// dispatch(component, command[, payload]) queues a command on the first
// mounted component with the given name.
func (e *Engine) dispatch(call goja.FunctionCall) goja.Value {
	name := call.Argument(0).String()
	cmd := element.Command{Name: call.Argument(1).String()}
	if p := call.Argument(2); !goja.IsUndefined(p) {
		cmd.Payload = p.Export()
	}

	var target element.Dispatcher
	if e.root != nil {
		target = element.FindComponent(e.root, name)
	}
	if target == nil {
		e.failure = fmt.Errorf("%w: %q", ErrNoSuchComponent, name)
		panic(e.vm.NewGoError(e.failure))
	}
	target.Dispatch(cmd)
	return goja.Undefined()
}

// Run executes one script. name labels the script in stack traces.
func (e *Engine) Run(name, src string) error {
	e.failure = nil
	if _, err := e.vm.RunScript(name, src); err != nil {
		if e.failure != nil {
			return fmt.Errorf("%s: %w", name, e.failure)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// Execute runs scripts in order and stops at the first failure.
func (e *Engine) Execute(scripts []string) error {
	for i, src := range scripts {
		if err := e.Run(fmt.Sprintf("script %d", i), src); err != nil {
			return err
		}
	}
	return nil
}
