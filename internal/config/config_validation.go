// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "golang.org/x/crypto/bcrypt"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Zero values are accepted for every field that has a built-in default so
// that a builder without defaults still validates.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.DB.Driver {
	case "", DriverPostgres, DriverSQLite:
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.Driver != "" && cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	cost := cfg.App.PasswordHashCost
	if cost != 0 && (cost < bcrypt.MinCost || cost > bcrypt.MaxCost) {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
