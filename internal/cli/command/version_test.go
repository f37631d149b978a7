package command

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/yndnr/envconf-go/internal/infra/buildinfo"
)

func TestVersion(t *testing.T) {
	out, err := runApp(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.HasPrefix(out, "envconf "+buildinfo.Get().Version) {
		t.Errorf("version output = %q", out)
	}
}

func TestVersion_JSON(t *testing.T) {
	out, err := runApp(t, "-o", "json", "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}

	var info buildinfo.Info
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if info.GoVersion == "" {
		t.Error("go_version should be set")
	}
}
