// Package data carries the fixture snapshot compiled into the binaries.
package data

import (
	_ "embed"
)

//go:embed fixtures/users.json
var UsersJSON []byte

//go:embed fixtures/apps.json
var AppsJSON []byte

//go:embed fixtures/appAILogs.json
var AppAILogsJSON []byte
