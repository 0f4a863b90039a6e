package htmlutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	require.Equal(t, "Toyota Corolla 1.8", CleanText(`<span class="veh">Toyota Corolla   1.8</span>`))
	require.Equal(t, "SMITH, John", CleanText("  <b>SMITH,</b> John\n"))
	require.Equal(t, "plain", CleanText("plain"))
	require.Equal(t, "", CleanText(""))
}
