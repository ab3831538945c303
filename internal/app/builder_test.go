package app_test

import (
	"context"
	"os"
	"testing"

	"github.com/Pa04rth/OpenCRE/internal/app"
	_ "github.com/Pa04rth/OpenCRE/internal/wiring" // Register providers
	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
)

func TestAppWiring(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	defer func() {
		errChdir := os.Chdir(cwd)
		require.NoError(t, errChdir)
	}()

	tmpDir := t.TempDir()
	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NoError(t, components.Close(context.Background()))
}
