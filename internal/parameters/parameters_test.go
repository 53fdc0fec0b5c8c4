package parameters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString("ab, max_time=5s,expr=a=b,,opening")
	assert.Equal(t, Params{"ab": "", "max_time": "5s", "expr": "a=b", "opening": ""}, params)
	assert.Equal(t, []string{"ab", "expr", "max_time", "opening"}, params.Keys())
	assert.Empty(t, NewFromConfigString(""))
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("depth=3,ratio=0.5,name=x,fast,pruning=false,max_time=1500ms,empty=")

	depth, err := GetParamOr(params, "depth", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, depth)

	ratio, err := GetParamOr(params, "ratio", float32(1))
	require.NoError(t, err)
	assert.Equal(t, float32(0.5), ratio)

	ratio64, err := GetParamOr(params, "ratio", 1.0)
	require.NoError(t, err)
	assert.Equal(t, 0.5, ratio64)

	name, err := GetParamOr(params, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "x", name)

	fast, err := GetParamOr(params, "fast", false)
	require.NoError(t, err)
	assert.True(t, fast)

	pruning, err := GetParamOr(params, "pruning", true)
	require.NoError(t, err)
	assert.False(t, pruning)

	maxTime, err := GetParamOr(params, "max_time", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, maxTime)

	empty, err := GetParamOr(params, "empty", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, empty)

	missing, err := GetParamOr(params, "missing", 11)
	require.NoError(t, err)
	assert.Equal(t, 11, missing)

	// Get doesn't remove, Pop does.
	assert.Contains(t, params, "depth")
	_, err = PopParamOr(params, "depth", 0)
	require.NoError(t, err)
	assert.NotContains(t, params, "depth")
}

func TestGetParamOrErrors(t *testing.T) {
	params := NewFromConfigString("depth=three,pruning=maybe,max_time=forever")
	_, err := GetParamOr(params, "depth", 1)
	assert.ErrorContains(t, err, "depth")
	_, err = GetParamOr(params, "pruning", true)
	assert.Error(t, err)
	_, err = PopParamOr(params, "max_time", time.Second)
	assert.Error(t, err)
	assert.Contains(t, params, "max_time", "failed parsing must not pop the parameter")
}
