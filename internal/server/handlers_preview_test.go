package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolio-builder/internal/state"
	"github.com/jonathan/portfolio-builder/internal/types"
)

func TestLive_PushesTreeOnEdit(t *testing.T) {
	env := newTestEnv(t)
	id := env.createSession(t, "")

	ts := httptest.NewServer(env.handler)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/sessions/" + id + "/live"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()
	assert.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var first treeResponse
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, uint64(0), first.Version)
	require.NotNil(t, first.Tree)

	name := "Morgan Lee"
	_, err = env.sessions.Dispatch(context.Background(), id, state.UpdateUserData{Patch: types.UserDataPatch{Name: &name}})
	require.NoError(t, err)

	var next treeResponse
	require.NoError(t, conn.ReadJSON(&next))
	assert.Equal(t, uint64(1), next.Version)
	assert.Contains(t, next.Tree.Root.Texts(), strings.ToUpper(name))
}

func TestLive_UnknownSession(t *testing.T) {
	env := newTestEnv(t)
	ts := httptest.NewServer(env.handler)
	defer ts.Close()

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/sessions/missing/live"
	_, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreview_UnknownSession(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/sessions/missing/preview", nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
