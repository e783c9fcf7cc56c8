package nao_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gonao/nao"
)

func TestDefaultConf(t *testing.T) {
	core, cv, err := nao.Default.Conf(1) // H
	require.NoError(t, err)
	require.Equal(t, [4]int{0, 0, 0, 0}, core)
	require.Equal(t, [4]int{1, 0, 0, 0}, cv)

	core, cv, err = nao.Default.Conf(8) // O
	require.NoError(t, err)
	require.Equal(t, [4]int{1, 0, 0, 0}, core)
	require.Equal(t, [4]int{2, 1, 0, 0}, cv)

	core, cv, err = nao.Default.Conf(26) // Fe
	require.NoError(t, err)
	require.Equal(t, [4]int{3, 2, 0, 0}, core)
	require.Equal(t, [4]int{4, 2, 1, 0}, cv)

	_, _, err = nao.Default.Conf(500)
	require.Error(t, err)
}

// The canonical Fe override sequence: each step builds on the last.
func TestSetAtomConfSequence(t *testing.T) {
	cs := nao.NewConfStore()

	require.NoError(t, cs.SetAtomConf("Fe", "1s1d"))
	core, cv, err := cs.Strings(26)
	require.NoError(t, err)
	require.Equal(t, "3s2p0d0f", core)
	require.Equal(t, "4s2p1d0f", cv)

	require.NoError(t, cs.SetAtomConf("Fe", "double d"))
	core, cv, _ = cs.Strings(26)
	require.Equal(t, "3s2p0d0f", core)
	require.Equal(t, "4s2p2d0f", cv)

	require.NoError(t, cs.SetAtomConf("Fe", "double p"))
	_, cv, _ = cs.Strings(26)
	require.Equal(t, "4s4p2d0f", cv)

	require.NoError(t, cs.SetAtomConf("Fe", "polarize"))
	core, cv, _ = cs.Strings(26)
	require.Equal(t, "3s2p0d0f", core)
	require.Equal(t, "4s4p2d1f", cv)
}

func TestSetAtomConfCoreAndValence(t *testing.T) {
	cs := nao.NewConfStore()
	require.NoError(t, cs.SetAtomConf("Fe", "3s2p", "1d"))
	core, cv, err := cs.Strings(26)
	require.NoError(t, err)
	require.Equal(t, "3s2p0d0f", core)
	// Channels the valence description does not name keep their
	// previous core+valence count.
	require.Equal(t, "4s2p1d0f", cv)
}

func TestSetAtomConfErrors(t *testing.T) {
	cs := nao.NewConfStore()
	require.Error(t, cs.SetAtomConf("Fe", "5x"))
	require.Error(t, cs.SetAtomConf("Fe", "s1"))
	require.Error(t, cs.SetAtomConf("Unobtainium", "1d"))
	require.Error(t, cs.SetAtomConf("Fe"))
	require.Error(t, cs.SetAtomConf("Fe", "1s", "1d", "1f"))
}

func TestConfStoreIsolation(t *testing.T) {
	cs := nao.NewConfStore()
	require.NoError(t, cs.SetAtomConf("O", "double d"))

	_, cvDefault, err := nao.Default.Strings(8)
	require.NoError(t, err)
	require.Equal(t, "2s1p0d0f", cvDefault)

	_, cvLocal, err := cs.Strings(8)
	require.NoError(t, err)
	require.Equal(t, "2s1p2d0f", cvLocal)
}
