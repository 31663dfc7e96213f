//go:build tools

package tools

// This file tracks versions of CLI tool dependencies.
// It is not compiled into the binary.
//
// - github.com/pressly/goose/v3/cmd/goose: registered as a go.mod tool,
//   run with `go tool goose -dir migrations postgres "$DATABASE_DSN" status`
// - github.com/matryer/moq: generates the service_mock_test.go files from
//   each package's consumer interfaces
