package atlasutils_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/atlaskit/atlasutils"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, atlasutils.CheckPow2(1, "one"))
	require.NoError(t, atlasutils.CheckPow2(uint32(4), "four"))
	require.NoError(t, atlasutils.CheckPow2(uint(1024), "kilo"))

	err := atlasutils.CheckPow2(6, "six")
	require.Error(t, err)
	require.True(t, errors.Is(err, atlasutils.PowerOfTwoError))
	require.Contains(t, err.Error(), "six is 6")

	err = atlasutils.CheckPow2(uint32(0), "zero")
	require.True(t, errors.Is(err, atlasutils.PowerOfTwoError))
}

func TestAlignUp(t *testing.T) {
	testCases := map[string]struct {
		Value     int
		Alignment uint
		Expected  int
	}{
		"AlreadyAligned": {Value: 8, Alignment: 4, Expected: 8},
		"RoundsUp":       {Value: 5, Alignment: 4, Expected: 8},
		"AlignmentOne":   {Value: 7, Alignment: 1, Expected: 7},
		"Zero":           {Value: 0, Alignment: 16, Expected: 0},
		"JustAbove":      {Value: 17, Alignment: 16, Expected: 32},
	}

	for name, testCase := range testCases {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, testCase.Expected, atlasutils.AlignUp(testCase.Value, testCase.Alignment))
		})
	}
}
