package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emwalker/lenrmc/internal/core/domain"
)

func TestStudiesCmd_Use(t *testing.T) {
	assert.Equal(t, "studies [labels...]", studiesCmd.Use)
}

func TestStudiesCmd_Short(t *testing.T) {
	assert.Equal(t, "List experimental observations", studiesCmd.Short)
}

func TestStudiesCmd_ListsSeededCatalogue(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"studies"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 7)
	assert.Contains(t, lines[0], "Label")
	assert.Contains(t, buf.String(), "6Li")
	assert.Contains(t, buf.String(), "62Ni")
	assert.Contains(t, buf.String(), "L15")
	assert.Contains(t, buf.String(), "2015 Lugano E-Cat test by Levi et al.")
}

func TestStudiesCmd_FiltersByLabel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"studies", "6Li", "7Li"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, buf.String(), "6Li")
	assert.Contains(t, buf.String(), "decrease")
	assert.NotContains(t, buf.String(), "62Ni")
}

func TestStudiesAddCmd_RecordsObservation(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{
		"studies", "add",
		"--label", "4He",
		"--change", "increase",
		"--ref", "M10",
		"--description", "Helium excess reported by Miles",
	})
	defer func() {
		rootCmd.SetArgs(nil)
		studyLabel, studyChange, studyRef, studyDescription = "", "", "", ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Recorded ✓ 4He increase [M10]")

	listed := new(bytes.Buffer)
	rootCmd.SetOut(listed)
	rootCmd.SetArgs([]string{"studies"})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, listed.String(), "4He")
	assert.Contains(t, listed.String(), "Miles")
}

func TestStudiesAddCmd_RejectsUnknownChange(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"studies", "add", "--label", "4He", "--change", "sideways"})
	defer func() {
		rootCmd.SetArgs(nil)
		studyLabel, studyChange = "", ""
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStudiesAddCmd_RequiresLabel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"studies", "add", "--change", "increase"})
	defer func() {
		rootCmd.SetArgs(nil)
		studyChange = ""
	}()

	err := rootCmd.Execute()

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "label is required")
}

func TestStudiesCmd_ServiceNotConfigured(t *testing.T) {
	oldService := studiesService
	oldWired := servicesWired
	studiesService = nil
	servicesWired = true
	defer func() {
		studiesService = oldService
		servicesWired = oldWired
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"studies"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "studies service not configured")
}
