// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Built-in defaults applied after every other configuration source.
const (
	DefaultHTTPAddress    = "localhost:5000"
	DefaultDBDriver       = DriverSQLite
	DefaultDBDSN          = "fsjstd-restapi.db"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAPIAddress     = "http://localhost:5000"
	DefaultSeedFile       = "seed/data.json"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{
				Driver: DefaultDBDriver,
				DSN:    DefaultDBDSN,
			},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAPIAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Seed: Seed{
			FilePath: DefaultSeedFile,
		},
	}
}
