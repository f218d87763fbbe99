package utils

import (
	"fmt"
	"net"
	"net/url"
	"time"
)

// PingService checks if a service is reachable at the given URL
func PingService(serviceURL string, timeout time.Duration) error {
	parsedURL, err := url.Parse(serviceURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	host := parsedURL.Hostname()
	port := parsedURL.Port()

	// Default ports if not specified
	if port == "" {
		switch parsedURL.Scheme {
		case "https":
			port = "443"
		case "redis", "rediss":
			port = "6379"
		default:
			port = "80"
		}
	}

	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}

// PingAddress checks a raw host and port accept TCP connections.
func PingAddress(host, port string, timeout time.Duration) error {
	return PingService("tcp://"+net.JoinHostPort(host, port), timeout)
}

// PingRedis checks if the Redis server behind REDIS_URL is reachable
func PingRedis(redisURL string) error {
	return PingService(redisURL, 1500*time.Millisecond)
}
