package ratelimit

import (
	"strings"
	"time"
)

// Rule pairs a path predicate with the quota it enforces. Key collapses path
// variants under one bucket so distinct resource instances behind the same
// route share one quota.
type Rule struct {
	Match  func(path string) bool
	Key    string
	Limit  int
	Window time.Duration
}

// DefaultRule applies when no explicit rule matches a path.
var DefaultRule = Rule{Limit: 120, Window: time.Minute}

// DefaultRules is the ordered rule list for the API surface. Matching is
// first-match-wins.
func DefaultRules() []Rule {
	return []Rule{
		{Match: prefix("/api/auth/login"), Key: "/api/auth/login", Limit: 5, Window: time.Minute},
		{Match: prefix("/api/auth/csrf"), Key: "/api/auth/csrf", Limit: 60, Window: 5 * time.Minute},
		{Match: prefix("/api/invite/accept"), Key: "/api/invite/accept", Limit: 10, Window: 10 * time.Minute},
		{Match: prefix("/api/transactions"), Key: "/api/transactions", Limit: 20, Window: time.Minute},
		{
			Match: func(p string) bool {
				return strings.HasPrefix(p, "/api/settlements") && strings.HasSuffix(p, "/mark-paid")
			},
			Key: "/api/settlements/mark-paid", Limit: 10, Window: time.Minute,
		},
		{Match: exact("/api/settlements"), Key: "/api/settlements", Limit: 10, Window: time.Minute},
		{
			Match: func(p string) bool {
				return strings.HasPrefix(p, "/api/admin/mechanics") && strings.Contains(p, "/code")
			},
			Key: "/api/admin/mechanics/code", Limit: 30, Window: 5 * time.Minute,
		},
		{Match: exact("/api/admin/mechanics"), Key: "/api/admin/mechanics", Limit: 20, Window: 5 * time.Minute},
	}
}

// Classify returns the first rule matching path. When nothing matches, the
// default quota applies and the raw path becomes the bucket key.
func Classify(rules []Rule, path string) Rule {
	for _, r := range rules {
		if r.Match(path) {
			return r
		}
	}
	d := DefaultRule
	d.Key = path
	return d
}

func prefix(p string) func(string) bool {
	return func(path string) bool { return strings.HasPrefix(path, p) }
}

func exact(p string) func(string) bool {
	return func(path string) bool { return path == p }
}
