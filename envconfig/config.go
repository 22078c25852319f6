// config.go - Haupt-Konfigurationsfunktionen fuer ranobe
//
// Dieses Modul enthaelt:
// - BaseURL: Basis-URL des Providers (RANOBE_BASE_URL)
// - Timeout: HTTP-Timeout (RANOBE_TIMEOUT)
// - UserAgent: User-Agent fuer alle Requests (RANOBE_USER_AGENT)
// - LogLevel: Gibt Log-Level zurueck (RANOBE_DEBUG)
//
// Weitere Konfigurationen sind ausgelagert:
// - config_features.go: Anzeige- und Provider-Variablen
// - config_utils.go: Utility-Funktionen und AsMap/Values
package envconfig

import (
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultUserAgent wird von der Seite des Providers ohne Captcha bedient
const DefaultUserAgent = "Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)"

// BaseURL gibt die Basis-URL des Providers zurueck
// Konfigurierbar via RANOBE_BASE_URL
// Leer bedeutet: Provider-Default
func BaseURL() *url.URL {
	s := strings.TrimSpace(Var("RANOBE_BASE_URL"))
	if s == "" {
		return nil
	}

	if !strings.Contains(s, "://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil || u.Host == "" {
		slog.Warn("invalid base url, using provider default", "value", s)
		return nil
	}
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u
}

// Timeout gibt das Timeout fuer HTTP-Requests zurueck
// Konfigurierbar via RANOBE_TIMEOUT (Dauer oder Sekunden)
// 0 oder negative Werte = kein Timeout
// Default: 30 Sekunden
func Timeout() (timeout time.Duration) {
	timeout = 30 * time.Second
	if s := Var("RANOBE_TIMEOUT"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			timeout = d
		} else if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			timeout = time.Duration(n) * time.Second
		} else {
			slog.Warn("invalid environment variable, using default", "key", "RANOBE_TIMEOUT", "value", s, "default", timeout)
		}
	}

	if timeout < 0 {
		return 0
	}

	return timeout
}

// UserAgent gibt den User-Agent zurueck
// Konfigurierbar via RANOBE_USER_AGENT
func UserAgent() string {
	if s := Var("RANOBE_USER_AGENT"); s != "" {
		return s
	}
	return DefaultUserAgent
}

// LogLevel gibt das Log-Level zurueck
// Konfigurierbar via RANOBE_DEBUG
// Werte: 0/false = INFO (Default), 1/true = DEBUG, 2 = TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("RANOBE_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// Var gibt eine Environment-Variable zurueck
// Entfernt fuehrende/trailing Quotes und Leerzeichen
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
