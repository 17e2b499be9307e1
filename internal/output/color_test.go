package output

import (
	"os"
	"testing"

	"github.com/ahmetb/foodshare/internal/freshness"
	"github.com/stretchr/testify/assert"
)

func TestPaint(t *testing.T) {
	assert.Equal(t, Palette[Alert]+"# Expired"+Reset, Paint("# Expired", Alert))
	assert.Equal(t, "# 3 hours ago", Paint("# 3 hours ago", Plain))
	assert.Equal(t, "", Paint("", Warn))
}

func TestToneFor(t *testing.T) {
	assert.Equal(t, Alert, ToneFor(freshness.Gone))
	assert.Equal(t, Warn, ToneFor(freshness.Urgent))
	assert.Equal(t, Muted, ToneFor(freshness.Fresh))
}

func TestResolveColor_Always(t *testing.T) {
	assert.True(t, ResolveColor("always", false))
	assert.True(t, ResolveColor("always", true))
}

func TestResolveColor_Never(t *testing.T) {
	assert.False(t, ResolveColor("never", false))
	assert.False(t, ResolveColor("never", true))
}

func TestResolveColor_AutoTTY(t *testing.T) {
	// Ensure NO_COLOR is not set
	t.Setenv("NO_COLOR", "")
	assert.True(t, ResolveColor("auto", true))
	assert.False(t, ResolveColor("auto", false))
}

func TestResolveColor_AutoNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.False(t, ResolveColor("auto", true))
	assert.False(t, ResolveColor("auto", false))
}

func TestIsTerminal_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	assert.False(t, IsTerminal(f))
}
