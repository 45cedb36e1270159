package test

import (
	"github.com/anthrofract/jjdag/internal/config"
	"github.com/anthrofract/jjdag/internal/jj"
	"github.com/anthrofract/jjdag/internal/ui/context"
)

// Globals are the invocation globals test expectations should be built
// with, matching what NewTestContext hands to the model.
var Globals = jj.GlobalArgs{Repository: "."}

// NewTestContext wires an AppContext to runner, the default config and a
// stub editor. Tests needing scripted prompt answers replace Editor.
func NewTestContext(runner jj.Runner) context.AppContext {
	return context.AppContext{
		Runner:  runner,
		Editor:  &StubEditor{},
		Config:  config.Default(),
		Globals: Globals,
	}
}
