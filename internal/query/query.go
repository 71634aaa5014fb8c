// Package query holds the request selections and turns them into the
// package endpoint URL.
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Platform is one of the fixed target platforms.
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformMac     Platform = "mac"
	PlatformLinux   Platform = "linux"
)

// Platforms lists every platform in canonical order.
var Platforms = []Platform{PlatformWindows, PlatformMac, PlatformLinux}

// ConfigType narrows the query to computer or user configuration.
// The zero value omits the parameter.
type ConfigType string

const (
	ConfigTypeNone     ConfigType = ""
	ConfigTypeComputer ConfigType = "computer"
	ConfigTypeUser     ConfigType = "user"
)

// ConfigTypes lists the selectable config types, None first.
var ConfigTypes = []ConfigType{ConfigTypeNone, ConfigTypeComputer, ConfigTypeUser}

// String returns the label shown in prompts.
func (c ConfigType) String() string {
	if c == ConfigTypeNone {
		return "None"
	}
	return string(c)
}

// platformKey is already percent-encoded; only the value goes through escape.
const platformKey = "platform%5B%5D"

// Selections are the aggregated prompt answers.
type Selections struct {
	Token         string
	Platforms     []Platform
	ConfigType    ConfigType
	SearchPackage string
}

// ParsePlatform maps a platform name to its Platform.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range Platforms {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform: %q", s)
}

// ParseConfigType maps a prompt label or value to its ConfigType.
// "None" and "" both yield ConfigTypeNone.
func ParseConfigType(s string) (ConfigType, error) {
	if s == "" || s == "None" {
		return ConfigTypeNone, nil
	}
	for _, c := range ConfigTypes {
		if string(c) == s {
			return c, nil
		}
	}
	return ConfigTypeNone, fmt.Errorf("unknown config type: %q", s)
}

// SortPlatforms returns the distinct platforms of ps in canonical order.
func SortPlatforms(ps []Platform) []Platform {
	rank := make(map[Platform]int, len(Platforms))
	for i, p := range Platforms {
		rank[p] = i
	}

	seen := make(map[Platform]bool, len(ps))
	out := make([]Platform, 0, len(ps))
	for _, p := range ps {
		if _, ok := rank[p]; !ok || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return rank[out[i]] < rank[out[j]] })
	return out
}

// BuildURL appends the selections to baseURL as query parameters.
// Parameter order is always platforms, configType, searchPackage.
func BuildURL(baseURL string, sel Selections) string {
	var params []string

	for _, p := range SortPlatforms(sel.Platforms) {
		params = append(params, platformKey+"="+Escape(string(p)))
	}

	if sel.ConfigType != ConfigTypeNone {
		params = append(params, "configType="+Escape(string(sel.ConfigType)))
	}

	if sel.SearchPackage != "" {
		params = append(params, "searchPackage="+Escape(sel.SearchPackage))
	}

	if len(params) == 0 {
		return baseURL
	}
	return baseURL + "?" + strings.Join(params, "&")
}

// Escape percent-encodes s for a query component. Only unreserved
// characters are left as is and a space becomes %20.
func Escape(s string) string {
	// QueryEscape already turns a literal '+' into %2B, so every '+' left is a space.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
