package app

import "go.uber.org/zap"

// Config holds runtime wiring options for building the toolchain.
type Config struct {
	Root       string      // examples repository root; discovered when empty
	ConfigFile string      // settings file path; defaults to ./.fhevm-scaffold.yaml
	Logger     *zap.Logger // optional; defaults to a no-op logger
}
