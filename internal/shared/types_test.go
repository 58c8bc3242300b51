package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("1965-08-01")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"1965-08-01"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal([]byte(`"1986-04-12"`), &decoded))
	assert.Equal(t, "1986-04-12", decoded.String())

	var unset Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &unset))
	assert.True(t, unset.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"12/04/1986"`), &decoded))
}

func TestDatePtrRoundTrip(t *testing.T) {
	assert.Nil(t, DatePtr(nil))
	assert.Nil(t, TimePtr(nil))

	now := time.Date(2001, 9, 9, 0, 0, 0, 0, time.UTC)
	d := DatePtr(&now)
	require.NotNil(t, d)
	assert.Equal(t, "2001-09-09", d.String())

	back := TimePtr(d)
	require.NotNil(t, back)
	assert.True(t, back.Equal(now))
}
