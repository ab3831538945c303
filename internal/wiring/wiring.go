// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/Pa04rth/OpenCRE/internal/adapters/backend"
	_ "github.com/Pa04rth/OpenCRE/internal/adapters/config"
	_ "github.com/Pa04rth/OpenCRE/internal/adapters/logger"
	_ "github.com/Pa04rth/OpenCRE/internal/adapters/prefs"
	_ "github.com/Pa04rth/OpenCRE/internal/adapters/render"
	_ "github.com/Pa04rth/OpenCRE/internal/adapters/store"
	_ "github.com/Pa04rth/OpenCRE/internal/adapters/telemetry"
	_ "github.com/Pa04rth/OpenCRE/internal/adapters/watcher"
	// Register app nodes.
	_ "github.com/Pa04rth/OpenCRE/internal/app"
)
