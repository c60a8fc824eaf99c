package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	gatewayv1 "github.com/aghigo/osiris-web-backend/pkg/apis/gateway/v1"
	sensornetv1 "github.com/aghigo/osiris-web-backend/pkg/apis/sensornet/v1"
	vsnv1 "github.com/aghigo/osiris-web-backend/pkg/apis/virtualsensornet/v1"
	"github.com/aghigo/osiris-web-backend/pkg/config"
	"github.com/aghigo/osiris-web-backend/pkg/omcp"
	"github.com/aghigo/osiris-web-backend/pkg/omcp/fake"
)

func newTestAPI(t *testing.T, c *fake.Client) *API {
	t.Helper()
	cfg := config.Default()
	api, err := MakeAPI(zap.NewNop(), omcp.Static(c), &cfg)
	require.NoError(t, err)
	return api
}

func serve(t *testing.T, api *API, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if len(body) > 0 {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	rec := httptest.NewRecorder()
	api.GetHandler().ServeHTTP(rec, req)
	return rec
}

func TestCollectorSensorsKeepBackendOrder(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodGet, "omcp://sensornet/N1/collector/C1/sensor/", omcp.OK, []sensornetv1.Sensor{
		{ID: "S1", NetworkID: "N1", CollectorID: "C1", State: sensornetv1.StateNew},
		{ID: "S2", NetworkID: "N1", CollectorID: "C1", State: sensornetv1.StateUpdated},
	})

	rec := serve(t, newTestAPI(t, c), http.MethodGet, "/sensornet/networks/N1/collectors/C1/sensors", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var got []gatewayv1.SensorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "S1", got[0].ID)
	assert.Equal(t, "S2", got[1].ID)
}

func TestSensorNotFound(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodGet, "omcp://sensornet/N1/collector/C1/sensor/S9/", omcp.NotFound, []byte(`{"id":"S9"}`))

	rec := serve(t, newTestAPI(t, c), http.MethodGet, "/sensornet/networks/N1/collectors/C1/sensors/S9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestNullItemsAreNotFound(t *testing.T) {
	c := fake.NewClient().Fallback(fake.Respond(omcp.OK, []byte("null")))
	api := newTestAPI(t, c)

	for _, path := range []string{
		"/sensornet/networks/N1",
		"/sensornet/networks/N1/collectors/C1",
		"/sensornet/networks/N1/collectors/C1/sensors/S1",
		"/virtualsensornet/links/7",
		"/virtualsensornet/datatypes/3",
	} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, api, http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestNullListElementsAreDropped(t *testing.T) {
	c := fake.NewClient().
		Reply(http.MethodGet, "omcp://sensornet/", omcp.OK, []byte(`[null,{"id":"N1"}]`)).
		Reply(http.MethodGet, "omcp://virtualsensornet/link/", omcp.OK, []byte(`[null]`))
	api := newTestAPI(t, c)

	rec := serve(t, api, http.MethodGet, "/sensornet/networks", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []gatewayv1.NetworkResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "N1", got[0].ID)

	rec = serve(t, api, http.MethodGet, "/virtualsensornet/links", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMalformedBackendItemIsInternal(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodGet, "omcp://sensornet/N1/collector/C1/sensor/S1/", omcp.OK,
		sensornetv1.Sensor{ID: "S1", NetworkID: "N1", CollectorID: "C1", State: "LOST"})

	rec := serve(t, newTestAPI(t, c), http.MethodGet, "/sensornet/networks/N1/collectors/C1/sensors/S1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "backend returned an invalid Sensor")
}

func TestEmptyListsAreNotFound(t *testing.T) {
	c := fake.NewClient().Fallback(fake.Respond(omcp.OK, []byte("[]")))
	api := newTestAPI(t, c)

	for _, path := range []string{
		"/sensornet/sensors",
		"/sensornet/networks",
		"/sensornet/networks/N1/sensors",
		"/sensornet/networks/N1/collectors",
		"/sensornet/networks/N1/collectors/C1/sensors",
		"/virtualsensornet/links",
		"/virtualsensornet/datatypes",
	} {
		t.Run(path, func(t *testing.T) {
			rec := serve(t, api, http.MethodGet, path, "")
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestNotFoundAndEmptyConverge(t *testing.T) {
	empty := serve(t, newTestAPI(t, fake.NewClient().Fallback(fake.Respond(omcp.OK, []byte("[]")))),
		http.MethodGet, "/virtualsensornet/links", "")
	missing := serve(t, newTestAPI(t, fake.NewClient().Fallback(fake.Respond(omcp.NotFound, nil))),
		http.MethodGet, "/virtualsensornet/links/1", "")

	assert.Equal(t, empty.Code, missing.Code)
	assert.Equal(t, empty.Body.String(), missing.Body.String())
}

func TestClassifiedErrorsHaveNoBody(t *testing.T) {
	tests := []struct {
		code omcp.StatusCode
		want int
	}{
		{omcp.BadRequest, http.StatusBadRequest},
		{omcp.Forbidden, http.StatusForbidden},
		{omcp.MethodNotAllowed, http.StatusMethodNotAllowed},
		{omcp.RequestTimeout, http.StatusRequestTimeout},
		{omcp.NotImplemented, http.StatusNotImplemented},
		{omcp.InternalServerError, http.StatusInternalServerError},
		{omcp.StatusCode(418), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			c := fake.NewClient().Fallback(fake.Respond(tt.code, []byte("backend diagnostics")))
			rec := serve(t, newTestAPI(t, c), http.MethodGet, "/sensornet/networks/N1", "")
			assert.Equal(t, tt.want, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}

func TestRuntimeFailureCarriesMessage(t *testing.T) {
	c := fake.NewClient().Fail(http.MethodGet, "omcp://sensornet/", fake.ErrTimeout)

	rec := serve(t, newTestAPI(t, c), http.MethodGet, "/sensornet/networks", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "i/o timeout")
}

func TestMalformedBackendBodyIsInternal(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodGet, "omcp://sensornet/N1/", omcp.OK, []byte("not json"))

	rec := serve(t, newTestAPI(t, c), http.MethodGet, "/sensornet/networks/N1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "omcp decode omcp://sensornet/N1/")
}

const validLink = `{"sensorId":"S1","collectorId":"C1","networkId":"N1","fields":[{"name":"temperature","dataTypeId":1}]}`

func TestCreateLink(t *testing.T) {
	c := fake.NewClient().On(http.MethodPost, "omcp://virtualsensornet/link/", func(call fake.Call) (*omcp.Response, error) {
		return omcp.NewResponse(call.URI, omcp.Created, nil, "omcp://virtualsensornet/link/42/"), nil
	})

	rec := serve(t, newTestAPI(t, c), http.MethodPost, "/virtualsensornet/links", validLink)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/virtualsensornet/links/42", rec.Header().Get("Location"))

	calls := c.Calls()
	require.Len(t, calls, 1)
	var sent vsnv1.Link
	require.NoError(t, json.Unmarshal(calls[0].Body, &sent))
	assert.Equal(t, "S1", sent.SensorID)
}

func TestCreateLinkTimeout(t *testing.T) {
	c := fake.NewClient().Fail(http.MethodPost, "omcp://virtualsensornet/link/", fake.ErrTimeout)

	rec := serve(t, newTestAPI(t, c), http.MethodPost, "/virtualsensornet/links", validLink)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "omcp POST omcp://virtualsensornet/link/")
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestCreateLinkMalformedLocation(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodPost, "omcp://virtualsensornet/link/", omcp.Created, nil)

	rec := serve(t, newTestAPI(t, c), http.MethodPost, "/virtualsensornet/links", validLink)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "malformed location")
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestRejectedBodies(t *testing.T) {
	c := fake.NewClient()
	api := newTestAPI(t, c)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   string
	}{
		{"not json", http.MethodPost, "/virtualsensornet/links", "{", "failed to decode Link"},
		{"unknown field", http.MethodPost, "/virtualsensornet/links", `{"sensor":"S1"}`, "failed to decode Link"},
		{"invalid link", http.MethodPost, "/virtualsensornet/links", `{"sensorId":"S1"}`, "Invalid Link object"},
		{"invalid data type", http.MethodPost, "/virtualsensornet/datatypes", `{"displayName":"x","type":"BLOB"}`, "DataType.Type: Unsupported type: BLOB"},
		{"id mismatch", http.MethodPut, "/virtualsensornet/links/7", `{"id":"8","sensorId":"S1","collectorId":"C1","networkId":"N1"}`, `link id "8" does not match path id "7"`},
		{"data type id mismatch", http.MethodPut, "/virtualsensornet/datatypes/3", `{"id":4,"displayName":"x","type":"REAL"}`, "data type id 4 does not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, api, tt.method, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
	assert.Empty(t, c.Calls(), "rejected bodies must not reach the backend")
}

func TestUpdateAndDelete(t *testing.T) {
	c := fake.NewClient().
		Reply(http.MethodPut, "omcp://virtualsensornet/datatype/3/", omcp.OK, nil).
		Reply(http.MethodDelete, "omcp://virtualsensornet/datatype/3/", omcp.OK, nil).
		Reply(http.MethodDelete, "omcp://virtualsensornet/link/9/", omcp.Forbidden, nil)
	api := newTestAPI(t, c)

	rec := serve(t, api, http.MethodPut, "/virtualsensornet/datatypes/3", `{"displayName":"celsius","type":"REAL","minValue":-10,"maxValue":50}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var sent vsnv1.DataType
	require.NoError(t, json.Unmarshal(c.Calls()[0].Body, &sent))
	assert.Equal(t, int64(3), sent.ID)

	rec = serve(t, api, http.MethodDelete, "/virtualsensornet/datatypes/3", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, api, http.MethodDelete, "/virtualsensornet/links/9", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetDataType(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodGet, "omcp://virtualsensornet/datatype/3/", omcp.OK, vsnv1.DataType{ID: 3, DisplayName: "celsius", Type: vsnv1.ValueTypeReal})

	rec := serve(t, newTestAPI(t, c), http.MethodGet, "/virtualsensornet/datatypes/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got vsnv1.DataType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "celsius", got.DisplayName)
}

func TestMockSensor(t *testing.T) {
	c := fake.NewClient()
	rec := serve(t, newTestAPI(t, c), http.MethodGet, "/sensornet/sensors/mock", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got gatewayv1.SensorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, got.Values)
	assert.Empty(t, c.Calls())
}

func TestOptions(t *testing.T) {
	c := fake.NewClient()
	api := newTestAPI(t, c)

	tests := map[string]string{
		"/sensornet/sensors":                              "GET, OPTIONS",
		"/sensornet/sensors/mock":                         "GET, OPTIONS",
		"/sensornet/networks":                             "GET, OPTIONS",
		"/sensornet/networks/N1":                          "GET, OPTIONS",
		"/sensornet/networks/N1/sensors":                  "GET, OPTIONS",
		"/sensornet/networks/N1/collectors":               "GET, OPTIONS",
		"/sensornet/networks/N1/collectors/C1":            "GET, OPTIONS",
		"/sensornet/networks/N1/collectors/C1/sensors":    "GET, OPTIONS",
		"/sensornet/networks/N1/collectors/C1/sensors/S1": "GET, OPTIONS",
		"/virtualsensornet/links":                         "GET, POST, OPTIONS",
		"/virtualsensornet/links/1":                       "GET, PUT, DELETE, OPTIONS",
		"/virtualsensornet/datatypes":                     "GET, POST, OPTIONS",
		"/virtualsensornet/datatypes/1":                   "GET, PUT, DELETE, OPTIONS",
	}
	for path, want := range tests {
		rec := serve(t, api, http.MethodOptions, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, want, rec.Header().Get("Allow"), path)
	}
	assert.Len(t, api.routes(), len(tests))
	assert.Empty(t, c.Calls(), "OPTIONS must not reach the backend")
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, newTestAPI(t, fake.NewClient()), http.MethodDelete, "/sensornet/sensors", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealthAndHome(t *testing.T) {
	api := newTestAPI(t, fake.NewClient())

	rec := serve(t, api, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, api, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var home map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &home))
	assert.Equal(t, []interface{}{"sensornet", "virtualsensornet"}, home["modules"])
}
