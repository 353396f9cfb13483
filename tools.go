//go:build tools

// Package tools pins the versions of the command-line tools used to lint,
// migrate, document and mock this module.
//
//	go run github.com/pressly/goose/v3/cmd/goose -dir internal/database/migrations/postgres postgres "$DSN" status
//	go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -o docs
//	go run github.com/golangci/golangci-lint/cmd/golangci-lint run ./...
package tools

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
)
