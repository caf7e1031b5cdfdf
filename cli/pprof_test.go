package cli

import (
	"testing"

	"github.com/ardnew/cppstamp/profile"
)

func TestPprofConfig_DisabledByDefault(t *testing.T) {
	var f pprofConfig

	if got := f.group().Key; got != profile.Tag {
		t.Errorf("group().Key = %q, want %q", got, profile.Tag)
	}

	stop := f.start(t.Context())
	stop()
}
