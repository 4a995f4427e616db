package telegram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackIDRoundTrip(t *testing.T) {
	data := callbackID(cbAdmComplete, 42)
	assert.Equal(t, "adm_complete:42", data)

	action, arg, err := parseCallback(data)
	require.NoError(t, err)
	assert.Equal(t, cbAdmComplete, action)

	id, err := parseCallbackID(arg)
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
}

func TestParseCallbackWithStringArg(t *testing.T) {
	action, arg, err := parseCallback(callbackData(cbNetwork, "TRC20"))
	require.NoError(t, err)
	assert.Equal(t, cbNetwork, action)
	assert.Equal(t, "TRC20", arg)
}

func TestParseCallbackMalformed(t *testing.T) {
	for _, data := range []string{"", "noseparator", ":42"} {
		_, _, err := parseCallback(data)
		assert.Error(t, err, "data %q", data)
	}
}

func TestParseCallbackIDBadNumber(t *testing.T) {
	_, err := parseCallbackID("abc")
	assert.Error(t, err)
}
