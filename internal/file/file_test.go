package file

import (
	"io/ioutil"
	"path"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	dir := t.TempDir()
	existing := path.Join(dir, "present")
	require.NoError(t, ioutil.WriteFile(existing, []byte("x"), 0644))
	require.True(t, Exists(existing))
	require.False(t, Exists(path.Join(dir, "bogus")))
}
