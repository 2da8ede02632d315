package ratelimit

import (
	"testing"
	"time"
)

func TestClassify(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name       string
		path       string
		wantKey    string
		wantLimit  int
		wantWindow time.Duration
	}{
		{"login", "/api/auth/login", "/api/auth/login", 5, time.Minute},
		{"login with suffix", "/api/auth/login/anything", "/api/auth/login", 5, time.Minute},
		{"csrf", "/api/auth/csrf", "/api/auth/csrf", 60, 5 * time.Minute},
		{"invite accept", "/api/invite/accept", "/api/invite/accept", 10, 10 * time.Minute},
		{"transactions collapse", "/api/transactions/42", "/api/transactions", 20, time.Minute},
		{"settlement mark-paid", "/api/settlements/7/mark-paid", "/api/settlements/mark-paid", 10, time.Minute},
		{"settlements root", "/api/settlements", "/api/settlements", 10, time.Minute},
		{"mechanic code action", "/api/admin/mechanics/9/code", "/api/admin/mechanics/code", 30, 5 * time.Minute},
		{"create mechanic", "/api/admin/mechanics", "/api/admin/mechanics", 20, 5 * time.Minute},
		{"unmatched gets default", "/api/other", "/api/other", 120, time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := Classify(rules, tt.path)
			if rule.Key != tt.wantKey {
				t.Errorf("key = %q, want %q", rule.Key, tt.wantKey)
			}
			if rule.Limit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", rule.Limit, tt.wantLimit)
			}
			if rule.Window != tt.wantWindow {
				t.Errorf("window = %v, want %v", rule.Window, tt.wantWindow)
			}
		})
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Match: prefix("/api/a"), Key: "first", Limit: 1, Window: time.Minute},
		{Match: prefix("/api/a/b"), Key: "second", Limit: 2, Window: time.Minute},
	}

	if rule := Classify(rules, "/api/a/b"); rule.Key != "first" {
		t.Errorf("expected first matching rule to win, got %q", rule.Key)
	}
}

func TestClassify_NoSideEffects(t *testing.T) {
	rules := DefaultRules()
	a := Classify(rules, "/api/auth/login")
	b := Classify(rules, "/api/auth/login")
	if a.Key != b.Key || a.Limit != b.Limit || a.Window != b.Window {
		t.Error("classification must be a pure function of the path")
	}
}
