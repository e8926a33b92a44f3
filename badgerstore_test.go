package morris

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBadgerStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	bs, err := OpenBadgerStore(dir)
	require.NoError(t, err)

	won := NewStore(4)
	won.Add(mustBoard(t, "WWWBBBEEEEEEEEEEEEEEEEEE"))
	lost := NewStore(4)
	lost.Add(mustBoard(t, "BBEEEEEBEEEEWEWWBWWEEEBE"))

	require.NoError(t, bs.Flush(won, classWon))
	require.NoError(t, bs.Flush(lost, classLost))
	require.NoError(t, bs.Close())

	reopened, err := OpenBadgerStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	loadedWon, loadedLost, err := reopened.Load()
	require.NoError(t, err)

	require.Equal(t, won.Len(), loadedWon.Len())
	require.Equal(t, lost.Len(), loadedLost.Len())
	for _, key := range won.Keys() {
		require.True(t, loadedWon.Contains(FromKey(key)))
	}
	for _, key := range lost.Keys() {
		require.True(t, loadedLost.Contains(FromKey(key)))
	}
}
