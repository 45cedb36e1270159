// Package context carries the collaborators the dashboard components
// share. They are wired up once in main and passed explicitly, so the
// event loop owns all mutable state itself.
package context

import (
	"github.com/anthrofract/jjdag/internal/config"
	"github.com/anthrofract/jjdag/internal/jj"
	"github.com/anthrofract/jjdag/internal/ui/editor"
)

type AppContext struct {
	Runner jj.Runner
	Editor editor.Service
	Config *config.Config
	// Globals seed every built invocation. The model keeps its own copy
	// so runtime toggles never leak back into the context.
	Globals jj.GlobalArgs
}
