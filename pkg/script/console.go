package script

import (
	"strings"

	"github.com/dop251/goja"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// consoleAPI routes console.log, console.warn and console.error to the
// logger.
type consoleAPI struct {
	logger *zap.Logger
	source string
}

func (c *consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.printer(zap.InfoLevel))
	console.Set("warn", c.printer(zap.WarnLevel))
	console.Set("error", c.printer(zap.ErrorLevel))
	vm.Set("console", console)
}

func (c *consoleAPI) printer(level zapcore.Level) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if ce := c.logger.Check(level, formatArgs(call.Arguments)); ce != nil {
			ce.Write(zap.String("source", c.source))
		}
		return goja.Undefined()
	}
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
