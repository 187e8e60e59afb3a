package adapter

import (
	"testing"

	"github.com/MKhiriev/cidr-viewer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayload(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Payload
		wantErr bool
	}{
		{name: "object", body: `{"a":1}`, want: Payload(`{"a":1}`)},
		{name: "surrounding whitespace", body: " [1,2]\n", want: Payload(`[1,2]`)},
		{name: "scalar", body: `"ok"`, want: Payload(`"ok"`)},
		{name: "empty", body: "", want: nil},
		{name: "html", body: "<html>", wantErr: true},
		{name: "truncated", body: `{"a":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newPayload([]byte(tt.body))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnexpectedPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayload_MarshalJSON(t *testing.T) {
	data, err := Payload(nil).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))

	data, err = Payload(`{"x":[1]}`).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"x":[1]}`, string(data))
}

func TestDecodeAs(t *testing.T) {
	resp, err := DecodeAs[models.HealthResponse](Payload(`{"status":"healthy","timestamp":"t","extra":true}`))
	require.NoError(t, err)
	assert.Equal(t, models.HealthResponse{Status: models.StatusHealthy, Timestamp: "t"}, resp)

	_, err = DecodeAs[models.HealthResponse](Payload(`{"status":5}`))
	assert.ErrorIs(t, err, ErrUnexpectedPayload)

	_, err = Payload(`[1]`).Map()
	assert.ErrorIs(t, err, ErrUnexpectedPayload)
}
