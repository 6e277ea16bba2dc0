package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCachedDecoder(t *testing.T) {
	d, err := NewCachedDecoder(2)
	require.NoError(t, err)

	v, err := d.Decode("FF", 16)
	require.NoError(t, err)
	assert.Equal(t, "255", v.String())
	assert.Equal(t, 1, d.Len())

	// 大小写不同视为同一条目
	v, err = d.Decode("ff", 16)
	require.NoError(t, err)
	assert.Equal(t, "255", v.String())
	assert.Equal(t, 1, d.Len())

	// 同一串不同进制是不同条目
	v, err = d.Decode("ff", 36)
	require.NoError(t, err)
	assert.Equal(t, "555", v.String())
	assert.Equal(t, 2, d.Len())

	// 超出容量后淘汰最旧的
	_, err = d.Decode("10", 2)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())
}

func TestCachedDecoderErrorsNotCached(t *testing.T) {
	d, err := NewCachedDecoder(8)
	require.NoError(t, err)

	_, err = d.Decode("g", 16)
	assert.ErrorIs(t, err, ErrDigitOutOfRange)
	assert.Equal(t, 0, d.Len())
}

func TestCachedDecoderDisabled(t *testing.T) {
	d, err := NewCachedDecoder(0)
	require.NoError(t, err)

	v, err := d.Decode("z", 36)
	require.NoError(t, err)
	assert.Equal(t, "35", v.String())
	assert.Equal(t, 0, d.Len())
}
