//go:build tools

package tools

// This file tracks CLI tools used by the repository.
// It is not compiled into the binary.
//
// - github.com/matryer/moq: interface mocks, see the go:generate lines in
//   the service and rest test files.
// - github.com/pressly/goose/v3/cmd/goose: declared as a tool in go.mod;
//   migrations are also applied by cmd/migrate.
