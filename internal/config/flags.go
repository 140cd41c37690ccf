package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-db-driver database driver ("pgx" or "sqlite3")
//	-d database DSN
//	-c/-config json file path with configs
//	-password-hash-cost bcrypt cost for account passwords
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-api-url base URL of the course API used by the seeder
//	-seed-file JSON seed data file
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDriver string
	var databaseDSN string
	var jsonConfigPath string
	var passwordHashCost int
	var requestTimeout time.Duration
	var apiURL string
	var seedFile string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx or sqlite3)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.IntVar(&passwordHashCost, "password-hash-cost", 0, "bcrypt cost for account passwords")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&apiURL, "api-url", "", "Course API base URL")
	flag.StringVar(&seedFile, "seed-file", "", "JSON seed data file")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			PasswordHashCost: passwordHashCost,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    apiURL,
			RequestTimeout: requestTimeout,
		},
		Seed: Seed{
			FilePath: seedFile,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
