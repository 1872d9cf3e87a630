package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTag_String(t *testing.T) {
	require.Equal(t, "Raw", TagRaw.String())
	require.Equal(t, "Dict", TagDict.String())
	require.Equal(t, "Delta", TagDelta.String())
	require.Equal(t, "IPXor", TagIPXor.String())
	require.Equal(t, "Hyper", TagHyper.String())
	require.Equal(t, "Unknown", Tag(0xFF).String())
}

func TestVariant_String(t *testing.T) {
	require.Equal(t, "S", VariantS.String())
	require.Equal(t, "U", VariantU.String())
	require.Equal(t, "H", VariantH.String())
	require.Equal(t, "Unknown", Variant(0xFF).String())
}
