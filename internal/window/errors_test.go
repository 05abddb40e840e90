package window

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	nf := notFound("settings")
	require.Equal(t, "window not found: settings", nf.Error())
	require.ErrorIs(t, nf, ErrNotFound)
	require.NotErrorIs(t, nf, ErrHostFailure)
	require.Equal(t, KindNotFound, KindOf(nf))

	mp := missingParameter("label")
	require.Equal(t, "label is required", mp.Error())
	require.ErrorIs(t, mp, ErrMissingParameter)

	native := errors.New("HRESULT 0x80070005")
	hf := hostFailure("main", native)
	require.Equal(t, "HRESULT 0x80070005", hf.Error())
	require.ErrorIs(t, hf, ErrHostFailure)
	require.ErrorIs(t, hf, native)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, KindHostFailure, KindOf(errors.New("plain")))
	require.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", notFound("x"))))
	require.Equal(t, "missing_parameter", KindMissingParameter.String())
	require.Equal(t, "unknown", Kind(42).String())
}

func TestBuildOptionsFromRequest(t *testing.T) {
	title := "Palette"
	width := 320.0
	opts := CreateOptions{Label: "palette", URL: "/palette", Title: &title, Width: &width}.
		buildOptions(StandardDefaults())

	require.Equal(t, BuildOptions{
		Label:           "palette",
		URL:             "/palette",
		Title:           "Palette",
		Width:           320,
		Height:          DefaultHeight,
		DisableDragDrop: true,
		Transparent:     true,
		Decorations:     true,
	}, opts)
}

func TestDefaultsNormalized(t *testing.T) {
	require.Equal(t, StandardDefaults(), Defaults{}.normalized())
	require.Equal(t, Defaults{Title: "X", Width: 850, Height: 10}, Defaults{Title: "X", Width: -1, Height: 10}.normalized())
}
