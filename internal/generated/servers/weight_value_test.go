package servers_test

import (
	"encoding/json"
	"testing"

	"courier/internal/generated/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightValue_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "number", body: `{"weight":2.0}`, want: "2.0"},
		{name: "exponent", body: `{"weight":1e2}`, want: "1e2"},
		{name: "string", body: `{"weight":"2.5"}`, want: "2.5"},
		{name: "null", body: `{"weight":null}`, want: ""},
		{name: "missing", body: `{}`, want: ""},
		{name: "boolean kept verbatim", body: `{"weight":true}`, want: "true"},
		{name: "object kept verbatim", body: `{"weight":{"kg":1}}`, want: `{"kg":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var body servers.NewShipment

			require.NoError(t, json.Unmarshal([]byte(tt.body), &body))
			assert.Equal(t, tt.want, body.Weight.String())
		})
	}
}

func TestGetSwagger_DescribesEveryRoute(t *testing.T) {
	swagger, err := servers.GetSwagger()
	require.NoError(t, err)
	require.NoError(t, swagger.Validate(t.Context()))

	for path, methods := range map[string][]string{
		"/api/v1/shipments":      {"GET", "POST"},
		"/api/v1/shipments/{id}": {"GET"},
		"/api/v1/customers":      {"GET", "POST"},
		"/api/v1/staff":          {"GET", "POST"},
	} {
		item := swagger.Paths.Find(path)
		require.NotNil(t, item, path)
		for _, method := range methods {
			assert.NotNil(t, item.GetOperation(method), "%s %s", method, path)
		}
	}
}
