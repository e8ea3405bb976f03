package scenes

import (
	"github.com/KanaWorksAI/ZOutbreak/pkg/game"
)

// Scene is a type alias for game.Scene so callers only need this package.
type Scene = game.Scene
