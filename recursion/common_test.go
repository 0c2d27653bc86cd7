package recursion

import (
	"testing"

	"github.com/blang/semver/v4"
	"github.com/stretchr/testify/require"

	"github.com/nume-crypto/battlezip/gadgets"
)

func TestCheckCompatibleRejectsSchemaMismatch(t *testing.T) {
	cfg := gadgets.InnerConfig()
	a := &CommonData{Schema: semver.MustParse("1.0.0"), Config: cfg}
	b := &CommonData{Schema: semver.MustParse("1.1.0"), Config: cfg}
	require.ErrorIs(t, a.CheckCompatible(b), ErrConfigMismatch)
}

func TestCheckCompatibleRejectsConfigMismatch(t *testing.T) {
	a := &CommonData{Schema: SchemaVersion, Config: gadgets.InnerConfig()}
	b := &CommonData{Schema: SchemaVersion, Config: gadgets.OuterConfig()}
	require.ErrorIs(t, a.CheckCompatible(b), ErrConfigMismatch)
}
