package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("toml config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")

	// ErrUnknownGormEngine error if config db.gormEngine names an unsupported database.
	ErrUnknownGormEngine = errors.New("toml config db.gormEngine must be one of sqlite, mysql, postgres")

	// ErrEmptyDBHost error if a networked database engine has no host.
	ErrEmptyDBHost = errors.New("toml config db.host can not be empty for mysql or postgres")
)
