package version

import "testing"

func TestInfoString(t *testing.T) {
	info := Info{Version: "v1.2.3", GitCommit: "abc1234", BuildTime: "2026-01-02T15:04:05Z"}
	want := "v1.2.3 (abc1234, built 2026-01-02T15:04:05Z)"
	if got := info.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
