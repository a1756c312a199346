// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
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

// ParseFlags parses the server flags from args (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-log-level zerolog level name
//	-session-sign-key session token signing key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-source-url favorites API base URL
//	-consumer-key favorites API consumer key
//	-consumer-secret favorites API consumer secret
//	-page-size favorites page size
//	-sync-timeout synchronisation budget (e.g., "30s")
//	-redis redis address for the sync lock
//	-resync-interval background resync interval (e.g., "15m")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var logLevel string
	var sessionSignKey string
	var requestTimeout time.Duration
	var sourceURL string
	var consumerKey string
	var consumerSecret string
	var pageSize int
	var syncTimeout time.Duration
	var redisAddress string
	var resyncInterval time.Duration

	fs := flag.NewFlagSet("fave-tweets", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session token signing key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&sourceURL, "source-url", "", "Favorites API base URL")
	fs.StringVar(&consumerKey, "consumer-key", "", "Favorites API consumer key")
	fs.StringVar(&consumerSecret, "consumer-secret", "", "Favorites API consumer secret")
	fs.IntVar(&pageSize, "page-size", 0, "Favorites page size")
	fs.DurationVar(&syncTimeout, "sync-timeout", 0, "Synchronisation budget (e.g., 30s)")
	fs.StringVar(&redisAddress, "redis", "", "Redis address host:port for the sync lock")
	fs.DurationVar(&resyncInterval, "resync-interval", 0, "Background resync interval (e.g., 15m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			SessionSignKey: sessionSignKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			BaseURL:        sourceURL,
			ConsumerKey:    consumerKey,
			ConsumerSecret: consumerSecret,
		},
		Sync: Sync{
			PageSize: pageSize,
			Timeout:  syncTimeout,
		},
		Lock: Lock{
			RedisAddress: redisAddress,
		},
		Workers: Workers{
			ResyncInterval: resyncInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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
		return errors.New("port number must be within 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
