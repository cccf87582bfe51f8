package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
	set  bool
}

// ParseFlags parses all configuration flags from args (without the program
// name). Only flags present in args produce non-zero fields, so the result
// can be merged over lower-priority layers.
//
// Flags:
//
//	-a, --address                   server address in format [host]:port
//	-d, --database-dsn              database DSN
//	-c, --config                    json file path with configs
//	    --session-secret            session cookie signing key
//	    --session-cookie-name       session cookie name
//	    --session-ttl               session lifetime (e.g. "336h")
//	    --session-secure-cookie     mark the session cookie Secure
//	    --password-hash-cost        bcrypt cost
//	    --log-level                 zerolog level name
//	    --request-timeout           request timeout (e.g. "30s")
//	    --shutdown-timeout          graceful shutdown timeout
//	    --session-cleanup-interval  expired session sweep period
//	    --seed-file                 YAML file with posts (seed command)
func ParseFlags(args []string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var serverAddress NetAddress

	fs := pflag.NewFlagSet("go-blog", pflag.ContinueOnError)
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&cfg.Storage.DB.DSN, "database-dsn", "d", "", "Database DSN")
	fs.StringVarP(&cfg.JSONFilePath, "config", "c", "", "JSON config file path")
	fs.StringVar(&cfg.App.SessionSecret, "session-secret", "", "Session cookie signing key")
	fs.StringVar(&cfg.App.SessionCookieName, "session-cookie-name", "", "Session cookie name")
	fs.DurationVar(&cfg.App.SessionTTL, "session-ttl", 0, "Session lifetime (e.g., 336h)")
	fs.BoolVar(&cfg.App.SecureCookie, "session-secure-cookie", false, "Send the session cookie over HTTPS only")
	fs.IntVar(&cfg.App.PasswordHashCost, "password-hash-cost", 0, "bcrypt cost for new passwords")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&cfg.Server.ShutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.DurationVar(&cfg.Workers.SessionCleanupInterval, "session-cleanup-interval", 0, "Expired session sweep period")
	fs.StringVar(&cfg.Seed.File, "seed-file", "", "YAML file with posts to seed")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when the address was never set.
func (a *NetAddress) String() string {
	if !a.set && a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host binds all interfaces. Hosts other than
// "localhost" must be IP addresses.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be within [1, 65535]")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	a.set = true
	return nil
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "address"
}
