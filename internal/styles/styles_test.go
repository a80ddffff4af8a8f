package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHelpersKeepText(t *testing.T) {
	assert.Contains(t, Label("backend"), "backend")
	assert.Contains(t, Dim("unknown"), "unknown")
	assert.Contains(t, Error("boom"), "✗ boom")
	assert.Contains(t, Success("built"), "✓ built")

	kv := KeyValue("library", "v1.2.3")
	assert.Contains(t, kv, "library:")
	assert.Contains(t, kv, "v1.2.3")
}
