package style_test

import (
	"testing"

	"github.com/Pa04rth/OpenCRE/internal/ui/style"
	"github.com/stretchr/testify/assert"
)

func TestDoctypeColor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, style.Iris, style.DoctypeColor("CRE"))
	assert.Equal(t, style.Green, style.DoctypeColor("Standard"))
	assert.Equal(t, style.Sky, style.DoctypeColor("Tool"))
	assert.Equal(t, style.Yellow, style.DoctypeColor("Code"))
}
