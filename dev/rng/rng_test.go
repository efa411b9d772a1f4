//go:build linux && !mips && !mipsle && !mips64 && !mips64le && !ppc64 && !ppc64le && !sparc64

package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The command table must match the values published in linux/random.h for
// the generic layout, otherwise the kernel routes the calls nowhere.
func TestCommandTableMatchesHeaderValues(t *testing.T) {
	assert.Equal(t, uint32(0x80045200), rndGetEntCnt.Code(), "RNDGETENTCNT")
	assert.Equal(t, uint32(0x40045201), rndAddToEntCnt.Code(), "RNDADDTOENTCNT")
	assert.Equal(t, uint32(0x5204), rndZapEntCnt.Code(), "RNDZAPENTCNT")
	assert.Equal(t, uint32(0x5207), rndReseedCRNG.Code(), "RNDRESEEDCRNG")
}
