package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
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

// parseFlags parses the server command-line flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-shutdown-timeout graceful shutdown timeout
//	-public-api-url apiBaseUrl published in /app-config.json
//	-public-api-timeout apiTimeout published in /app-config.json
//	-max-cidrs largest accepted analysis request
//	-max-comparisons overlap comparison budget per analysis
//	-log-level debug, info, warn or error
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var serverAddress NetAddress
	var jsonConfigPath string
	var requestTimeout, shutdownTimeout, publicAPITimeout time.Duration
	var publicAPIBaseURL string
	var maxCIDRs, maxComparisons int
	var logLevel string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout")
	fs.StringVar(&publicAPIBaseURL, "public-api-url", "", "API base URL published to clients")
	fs.DurationVar(&publicAPITimeout, "public-api-timeout", 0, "API timeout published to clients")
	fs.IntVar(&maxCIDRs, "max-cidrs", 0, "Maximum CIDRs per analysis request")
	fs.IntVar(&maxComparisons, "max-comparisons", 0, "Maximum overlap comparisons per analysis")
	fs.StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:      serverAddress.String(),
			RequestTimeout:   requestTimeout,
			ShutdownTimeout:  shutdownTimeout,
			PublicAPIBaseURL: publicAPIBaseURL,
			PublicAPITimeout: publicAPITimeout,
		},
		Analysis: Analysis{
			MaxCIDRs:       maxCIDRs,
			MaxComparisons: maxComparisons,
		},
		Logging:      Logging{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "cidr-server"
	}
	return os.Args[0]
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
// An empty host listens on all interfaces. Otherwise the host must be
// "localhost" or an IP address.
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

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
