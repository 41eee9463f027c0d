package updater

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// --- normalizeVersion ---

func TestNormalizeVersion_StripsV(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"v1.2.3", "1.2.3"},
		{"1.2.3", "1.2.3"},
		{"v0.1.0", "0.1.0"},
		{"", ""},
		{"v", ""},
		{"vv1.0.0", "v1.0.0"}, // only strips one leading v
	}

	for _, tt := range tests {
		got := normalizeVersion(tt.input)
		if got != tt.want {
			t.Errorf("normalizeVersion(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

// --- isNewer ---

func TestIsNewer(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer patch", "0.2.0", "0.2.1", true},
		{"newer minor", "0.2.0", "0.3.0", true},
		{"newer major", "0.2.0", "1.0.0", true},
		{"same version", "0.2.0", "0.2.0", false},
		{"older version", "0.3.0", "0.2.0", false},
		{"empty current", "", "0.2.0", false},
		{"empty latest", "0.2.0", "", false},
		{"dev current", "dev", "0.2.0", false},
		{"two part version", "0.2", "0.3.0", true},
		{"minor jump", "0.9.0", "0.10.0", true},
		{"prerelease older than release", "1.0.0", "1.0.0-rc.1", false},
		{"release newer than prerelease", "1.0.0-rc.1", "1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNewer(tt.current, tt.latest); got != tt.want {
				t.Errorf("isNewer(%q, %q) = %v, want %v", tt.current, tt.latest, got, tt.want)
			}
		})
	}
}

// --- Check ---

func newReleaseServer(t *testing.T, release ReleaseInfo, status int) *Checker {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("request should carry a User-Agent")
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(release)
	}))
	t.Cleanup(ts.Close)
	return &Checker{Endpoint: ts.URL, Client: ts.Client()}
}

func TestCheck_UpdateAvailable(t *testing.T) {
	release := ReleaseInfo{
		TagName: "v0.3.0",
		HTMLURL: "https://github.com/HendryAvila/lifemorale/releases/tag/v0.3.0",
	}
	c := newReleaseServer(t, release, http.StatusOK)

	result, err := c.Check(context.Background(), "v0.2.0")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if !result.UpdateAvailable {
		t.Error("expected UpdateAvailable to be true")
	}
	if result.LatestVersion != "0.3.0" {
		t.Errorf("LatestVersion = %q, want %q", result.LatestVersion, "0.3.0")
	}
	if result.CurrentVersion != "0.2.0" {
		t.Errorf("CurrentVersion = %q, want %q", result.CurrentVersion, "0.2.0")
	}
	if result.ReleaseURL != release.HTMLURL {
		t.Errorf("ReleaseURL = %q, want %q", result.ReleaseURL, release.HTMLURL)
	}
}

func TestCheck_AlreadyLatest(t *testing.T) {
	c := newReleaseServer(t, ReleaseInfo{TagName: "v0.2.0"}, http.StatusOK)

	result, err := c.Check(context.Background(), "0.2.0")
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if result.UpdateAvailable {
		t.Error("same version should not report an update")
	}
}

func TestCheck_APIErrorStatus(t *testing.T) {
	c := newReleaseServer(t, ReleaseInfo{}, http.StatusForbidden)

	result, err := c.Check(context.Background(), "0.2.0")
	if err == nil {
		t.Fatal("expected an error for a non-200 response")
	}
	if result == nil || result.CurrentVersion != "0.2.0" || result.UpdateAvailable {
		t.Errorf("result should still carry the current version: %+v", result)
	}
}

func TestCheck_NetworkError(t *testing.T) {
	c := &Checker{Endpoint: "http://127.0.0.1:1/unreachable"}

	result, err := c.Check(context.Background(), "0.2.0")
	if err == nil {
		t.Fatal("expected a network error")
	}
	if result.LatestVersion != "" {
		t.Errorf("LatestVersion = %q, want empty", result.LatestVersion)
	}
}

func TestCheck_CancelledContext(t *testing.T) {
	c := newReleaseServer(t, ReleaseInfo{TagName: "v9.0.0"}, http.StatusOK)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := c.Check(ctx, "0.1.0"); err == nil {
		t.Fatal("cancelled context should fail the check")
	}
}
