// Package cmd provides CLI command implementations.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	serrors "github.com/sockforge/cli/internal/errors"
)

func TestNewNewCmd(t *testing.T) {
	cmd := NewNewCmd()

	assert.Equal(t, "new <path>", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	assert.NotNil(t, cmd.Flags().Lookup("app"))
	assert.NotNil(t, cmd.Flags().Lookup("module"))
	assert.NotNil(t, cmd.Flags().Lookup("sup"))
	assert.NotNil(t, cmd.Flags().Lookup("umbrella"))
}

func TestNew_RequiresArgs(t *testing.T) {
	cmd := NewNewCmd()
	cmd.SetArgs([]string{})

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.Error(t, err)
	// Cobra's ExactArgs(1) returns "accepts 1 arg(s), received 0"
	assert.Contains(t, err.Error(), "accepts 1 arg")
}

func TestNew_SingleProject(t *testing.T) {
	target := filepath.Join(t.TempDir(), "my_app")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(target, "mix.exs"))
	assert.FileExists(t, filepath.Join(target, "lib", "my_app.ex"))
	assert.FileExists(t, filepath.Join(target, "lib", "my_app", "tcp_acceptor.ex"))
	assert.FileExists(t, filepath.Join(target, "test", "my_app_test.exs"))
}

func TestNew_Umbrella(t *testing.T) {
	target := filepath.Join(t.TempDir(), "platform")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target, "--umbrella"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	assert.FileExists(t, filepath.Join(target, "mix.exs"))
	assert.DirExists(t, filepath.Join(target, "apps"))
	assert.NoDirExists(t, filepath.Join(target, "lib"))
}

func TestNew_ExplicitNames(t *testing.T) {
	target := filepath.Join(t.TempDir(), "some-dir")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target, "--app", "gateway", "--module", "Edge.Gateway"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	require.NoError(t, cmd.Execute())

	entry, err := os.ReadFile(filepath.Join(target, "lib", "gateway.ex"))
	require.NoError(t, err)
	assert.Contains(t, string(entry), "defmodule Edge.Gateway do")
}

func TestNew_InvalidAppNameFromPath(t *testing.T) {
	target := filepath.Join(t.TempDir(), "Bad-Name")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, serrors.ErrInvalidName)
	assert.Contains(t, err.Error(), "inferred from the target path")

	// Fail fast: nothing was created.
	assert.NoDirExists(t, target)
}

func TestNew_ReservedModuleName(t *testing.T) {
	target := filepath.Join(t.TempDir(), "my_app")

	cmd := NewNewCmd()
	cmd.SetArgs([]string{target, "--module", "Supervisor"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	assert.ErrorIs(t, err, serrors.ErrNameCollision)
	assert.NoDirExists(t, target)
}

func TestNew_SecondRunFails(t *testing.T) {
	target := filepath.Join(t.TempDir(), "my_app")

	first := NewNewCmd()
	first.SetArgs([]string{target})
	first.SetOut(&bytes.Buffer{})
	first.SetErr(&bytes.Buffer{})
	require.NoError(t, first.Execute())

	second := NewNewCmd()
	second.SetArgs([]string{target})
	second.SetOut(&bytes.Buffer{})
	second.SetErr(&bytes.Buffer{})
	assert.ErrorIs(t, second.Execute(), serrors.ErrAlreadyExists)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitSuccess, ExitCode(nil))
	assert.Equal(t, ExitInvalidName, ExitCode(serrors.NewInvalidNameError("m", "n", "h")))
	assert.Equal(t, ExitNameCollision, ExitCode(serrors.NewNameCollisionError("m", "n", "h")))
	assert.Equal(t, ExitAlreadyExists, ExitCode(serrors.NewAlreadyExistsError("m", "p")))
	assert.Equal(t, ExitPathUncreatable, ExitCode(serrors.NewPathUncreatableError("m", "p", os.ErrPermission)))
	assert.Equal(t, ExitGeneralError, ExitCode(assert.AnError))
}
