//go:build tools
// +build tools

// Package tools pins mockgen so `go generate ./...` regenerates mocks/
// with the version recorded in go.mod.
package chat_app

import (
	_ "go.uber.org/mock/mockgen"
)
