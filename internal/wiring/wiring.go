// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cradle/internal/adapters/buildtool"
	_ "go.trai.ch/cradle/internal/adapters/fs"
	_ "go.trai.ch/cradle/internal/adapters/ghc"
	_ "go.trai.ch/cradle/internal/adapters/logger"
	_ "go.trai.ch/cradle/internal/adapters/telemetry"
	_ "go.trai.ch/cradle/internal/adapters/tools"
	_ "go.trai.ch/cradle/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/cradle/internal/app"
	_ "go.trai.ch/cradle/internal/engine/locator"
	_ "go.trai.ch/cradle/internal/engine/resolver"
	_ "go.trai.ch/cradle/internal/engine/store"
)
