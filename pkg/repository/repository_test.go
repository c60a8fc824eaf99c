package repository

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	sensornetv1 "github.com/aghigo/osiris-web-backend/pkg/apis/sensornet/v1"
	vsnv1 "github.com/aghigo/osiris-web-backend/pkg/apis/virtualsensornet/v1"
	ferror "github.com/aghigo/osiris-web-backend/pkg/error"
	"github.com/aghigo/osiris-web-backend/pkg/omcp"
	"github.com/aghigo/osiris-web-backend/pkg/omcp/fake"
)

func newLinkRepo(t *testing.T, c *fake.Client) *LinkRepository {
	t.Helper()
	repo, err := NewLinkRepository(zap.NewNop(), omcp.Static(c), DefaultLinkKind)
	require.NoError(t, err)
	return repo
}

func TestKindValidate(t *testing.T) {
	for _, k := range []Kind{DefaultLinkKind, DefaultDataTypeKind, DefaultNetworkKind, DefaultCollectorKind, DefaultSensorKind.Kind} {
		assert.NoError(t, k.Validate(), k.Name)
	}

	bad := Kind{Name: "collector", Parents: 1, Collection: "omcp://sensornet/collector/", Item: "omcp://sensornet/%s/collector/%s/"}
	assert.Error(t, bad.Validate())
	_, err := NewCollectorRepository(zap.NewNop(), omcp.Static(fake.NewClient()), bad)
	assert.Error(t, err)

	badByNetwork := SensorKind{Kind: DefaultSensorKind.Kind, ByNetwork: "omcp://sensornet/sensor/"}
	assert.ErrorContains(t, badByNetwork.Validate(), "sensor by network")
	_, err = NewSensorRepository(zap.NewNop(), omcp.Static(fake.NewClient()), badByNetwork)
	assert.Error(t, err)
	assert.NoError(t, DefaultSensorKind.Validate())
}

func TestGetAll(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodGet, "omcp://virtualsensornet/link/", omcp.OK, []vsnv1.Link{
		{ID: "2", SensorID: "s2"},
		{ID: "1", SensorID: "s1"},
	})
	links, err := newLinkRepo(t, c).GetAll()
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, "2", links[0].ID)
	assert.Equal(t, "1", links[1].ID)
}

func TestGetAllEmpty(t *testing.T) {
	for _, body := range []string{"[]", "null"} {
		c := fake.NewClient().Reply(http.MethodGet, "omcp://virtualsensornet/link/", omcp.OK, []byte(body))
		links, err := newLinkRepo(t, c).GetAll()
		require.NoError(t, err)
		assert.NotNil(t, links)
		assert.Empty(t, links)
	}
}

func TestGetByIDNullIsNotFound(t *testing.T) {
	for _, body := range []string{"null", " null\n"} {
		c := fake.NewClient().Reply(http.MethodGet, "omcp://virtualsensornet/link/7/", omcp.OK, []byte(body))
		link, err := newLinkRepo(t, c).GetByID("7")
		require.Error(t, err)
		assert.Nil(t, link)
		assert.True(t, ferror.IsNotFound(err), "got %v", err)
	}
}

func TestGetAllDropsNullElements(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodGet, "omcp://virtualsensornet/link/", omcp.OK,
		[]byte(`[null,{"id":"1","sensorId":"s1"},null]`))
	links, err := newLinkRepo(t, c).GetAll()
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, "1", links[0].ID)

	c = fake.NewClient().Reply(http.MethodGet, "omcp://virtualsensornet/link/", omcp.OK, []byte(`[null]`))
	links, err = newLinkRepo(t, c).GetAll()
	require.NoError(t, err)
	assert.NotNil(t, links)
	assert.Empty(t, links)
}

func TestClassifiedBeforeDecode(t *testing.T) {
	codes := map[omcp.StatusCode]int{
		omcp.NotFound:            http.StatusNotFound,
		omcp.BadRequest:          http.StatusBadRequest,
		omcp.Forbidden:           http.StatusForbidden,
		omcp.MethodNotAllowed:    http.StatusMethodNotAllowed,
		omcp.RequestTimeout:      http.StatusRequestTimeout,
		omcp.NotImplemented:      http.StatusNotImplemented,
		omcp.InternalServerError: http.StatusInternalServerError,
	}
	for code, status := range codes {
		t.Run(code.String(), func(t *testing.T) {
			// the body is not a link; it must never be decoded
			c := fake.NewClient().Fallback(fake.Respond(code, []byte("<html>oops</html>")))
			repo := newLinkRepo(t, c)

			_, err := repo.GetByID("9")
			fe, ok := ferror.As(err)
			require.True(t, ok, "got %v", err)
			assert.Equal(t, status, fe.HTTPStatus())

			_, err = repo.GetAll()
			assert.Equal(t, ferror.Classify(code), err)

			_, err = repo.Save(&vsnv1.Link{SensorID: "s1"})
			assert.Equal(t, ferror.Classify(code), err)

			assert.Equal(t, ferror.Classify(code), repo.Update(&vsnv1.Link{ID: "9"}, "9"))
			assert.Equal(t, ferror.Classify(code), repo.Delete("9"))
		})
	}
}

func TestTransportFailurePropagates(t *testing.T) {
	c := fake.NewClient().
		Fail(http.MethodGet, "omcp://virtualsensornet/link/1/", fake.ErrTimeout).
		Fail(http.MethodPost, "omcp://virtualsensornet/link/", fake.ErrTimeout)
	repo := newLinkRepo(t, c)

	_, err := repo.GetByID("1")
	var ce *omcp.ClientError
	require.True(t, errors.As(err, &ce))
	assert.ErrorIs(t, err, fake.ErrTimeout)
	_, classified := ferror.As(err)
	assert.False(t, classified)

	loc, err := repo.Save(&vsnv1.Link{SensorID: "s1"})
	assert.Nil(t, loc)
	assert.True(t, omcp.IsClientError(err))
}

func TestMalformedBody(t *testing.T) {
	c := fake.NewClient().Reply(http.MethodGet, "omcp://virtualsensornet/link/1/", omcp.OK, []byte("{"))
	_, err := newLinkRepo(t, c).GetByID("1")
	assert.True(t, omcp.IsClientError(err))
}

// memoryBackend stores posted links and serves them back, like the
// VirtualSensorNet module does.
type memoryBackend struct {
	mu    sync.Mutex
	links map[string][]byte
}

func (m *memoryBackend) install(c *fake.Client) {
	c.On(http.MethodPost, "omcp://virtualsensornet/link/", func(call fake.Call) (*omcp.Response, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		var l vsnv1.Link
		if err := json.Unmarshal(call.Body, &l); err != nil {
			return omcp.NewResponse(call.URI, omcp.BadRequest, nil, ""), nil
		}
		l.ID = "42"
		b, _ := json.Marshal(l)
		m.links[l.ID] = b
		return omcp.NewResponse(call.URI, omcp.Created, nil, "omcp://virtualsensornet/link/42/"), nil
	})
	c.Fallback(func(call fake.Call) (*omcp.Response, error) {
		m.mu.Lock()
		defer m.mu.Unlock()
		for id, b := range m.links {
			if call.Method == http.MethodGet && call.URI == "omcp://virtualsensornet/link/"+id+"/" {
				return omcp.NewResponse(call.URI, omcp.OK, b, ""), nil
			}
		}
		return omcp.NewResponse(call.URI, omcp.NotFound, nil, ""), nil
	})
}

func TestSaveRoundTrip(t *testing.T) {
	c := fake.NewClient()
	(&memoryBackend{links: map[string][]byte{}}).install(c)
	repo := newLinkRepo(t, c)

	link := vsnv1.Link{
		SensorID:    "s1",
		CollectorID: "c1",
		NetworkID:   "n1",
		Fields: []vsnv1.Field{
			{ID: 1, Name: "temperature", DataTypeID: 3, ConverterID: 7, Initialized: true},
			{ID: 2, Name: "humidity", DataTypeID: 4},
		},
	}
	loc, err := repo.Save(&link)
	require.NoError(t, err)
	id := IDFromLocation(loc)
	assert.Equal(t, "42", id)

	got, err := repo.GetByID(id)
	require.NoError(t, err)

	want := link
	want.ID = id
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveMalformedLocation(t *testing.T) {
	for _, location := range []string{"", "::not a uri", "relative/path/1", "omcp://virtualsensornet"} {
		c := fake.NewClient().On(http.MethodPost, "omcp://virtualsensornet/link/", func(call fake.Call) (*omcp.Response, error) {
			return omcp.NewResponse(call.URI, omcp.Created, nil, location), nil
		})
		loc, err := newLinkRepo(t, c).Save(&vsnv1.Link{SensorID: "s1"})
		assert.Nil(t, loc)
		var le *LocationError
		require.True(t, errors.As(err, &le), "location %q: %v", location, err)
		assert.Equal(t, location, le.Location)
	}
}

func TestUpdateAndDeleteTargetItem(t *testing.T) {
	c := fake.NewClient().Fallback(fake.Respond(omcp.OK, nil))
	repo := newLinkRepo(t, c)

	require.NoError(t, repo.Update(&vsnv1.Link{ID: "7", SensorID: "s1"}, "7"))
	require.NoError(t, repo.Delete("7"))

	calls := c.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, fake.Call{Method: http.MethodPut, URI: "omcp://virtualsensornet/link/7/", Body: calls[0].Body}, calls[0])
	assert.JSONEq(t, `{"id":"7","sensorId":"s1","collectorId":"","networkId":"","fields":null}`, string(calls[0].Body))
	assert.Equal(t, fake.Call{Method: http.MethodDelete, URI: "omcp://virtualsensornet/link/7/"}, calls[1])
}

func TestIDsAreEscaped(t *testing.T) {
	c := fake.NewClient().Fallback(fake.Respond(omcp.NotFound, nil))
	_, err := newLinkRepo(t, c).GetByID("a/b c")
	assert.True(t, ferror.IsNotFound(err))
	assert.Equal(t, "omcp://virtualsensornet/link/a%2Fb%20c/", c.Calls()[0].URI)
}

func TestWrongNumberOfIDs(t *testing.T) {
	c := fake.NewClient()
	_, err := newLinkRepo(t, c).GetByID()
	assert.Error(t, err)
	assert.Empty(t, c.Calls())
}

func TestSensorRepository(t *testing.T) {
	sensors := []sensornetv1.Sensor{{ID: "S1", NetworkID: "N1", CollectorID: "C1"}}
	c := fake.NewClient().
		Reply(http.MethodGet, "omcp://sensornet/N1/sensor/", omcp.OK, sensors).
		Reply(http.MethodGet, "omcp://sensornet/N1/collector/C1/sensor/", omcp.OK, sensors).
		Reply(http.MethodGet, "omcp://sensornet/N1/collector/C1/sensor/S1/", omcp.OK, sensors[0])
	repo, err := NewSensorRepository(zap.NewNop(), omcp.Static(c), DefaultSensorKind)
	require.NoError(t, err)

	got, err := repo.GetAllByNetworkID("N1")
	require.NoError(t, err)
	assert.Equal(t, sensors, got)

	got, err = repo.GetAllByCollectorIDAndNetworkID("N1", "C1")
	require.NoError(t, err)
	assert.Equal(t, sensors, got)

	one, err := repo.GetByCollectorIDAndNetworkID("N1", "C1", "S1")
	require.NoError(t, err)
	assert.Equal(t, &sensors[0], one)
}

func TestIDFromLocation(t *testing.T) {
	tests := map[string]string{
		"omcp://virtualsensornet/link/42/":        "42",
		"omcp://virtualsensornet/link/42":         "42",
		"omcp://virtualsensornet/datatype/a%20b/": "a b",
		"omcp://virtualsensornet/":                "",
	}
	for location, want := range tests {
		u, err := url.Parse(location)
		require.NoError(t, err)
		assert.Equal(t, want, IDFromLocation(u), location)
	}
	assert.Equal(t, "", IDFromLocation(nil))
}
