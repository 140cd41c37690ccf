// Package seeder loads the seed data file and replays it against a running
// course API through [adapter.ServerAdapter]: accounts first, then every
// course under its owner's credentials.
package seeder
