package semver

import (
	goerrors "errors"
	"testing"

	"gotest.tools/v3/assert"
	"mcpkg.io/mcpkg/pkg/errors"
)

func TestCompare(t *testing.T) {
	res, err := Compare("0.0.0", "1.0.0")
	assert.Equal(t, err, nil)
	assert.Assert(t, res < 0)

	res, err = Compare("1.10.0", "1.2.0")
	assert.Equal(t, err, nil)
	assert.Assert(t, res > 0)

	res, err = Compare("2.0.0", "2.0.0")
	assert.Equal(t, err, nil)
	assert.Equal(t, res, 0)

	res, err = Compare("1.2", "1.2.0")
	assert.Equal(t, err, nil)
	assert.Equal(t, res, 0)
}

func TestCompareInvalid(t *testing.T) {
	_, err := Compare("not_a_version", "1.0.0")
	assert.Assert(t, goerrors.Is(err, errors.InvalidVersion))

	_, err = Compare("1.0.0", "")
	assert.Assert(t, goerrors.Is(err, errors.InvalidVersion))

	_, err = Compare("1.0.0-beta", "1.0.0")
	assert.Assert(t, goerrors.Is(err, errors.InvalidVersion))
}

func TestCompareOrLowest(t *testing.T) {
	assert.Equal(t, CompareOrLowest("", "0.0.1"), -1)
	assert.Equal(t, CompareOrLowest("garbage", "0.0.0"), 0)
	assert.Equal(t, CompareOrLowest("1.0.0", "unknown"), 1)
	assert.Equal(t, GreaterThan("1.2.0", "1.0.0"), true)
	assert.Equal(t, GreaterThan("1.0.0", "1.0.0"), false)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, Normalize("1.3.1"), "1.3.1")
	assert.Equal(t, Normalize(""), "0.0.0")
	assert.Equal(t, Normalize("v1"), "0.0.0")
}
