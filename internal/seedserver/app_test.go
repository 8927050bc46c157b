package seedserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophtodo/internal/seedserver/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	c := &config.Config{}
	c.LoadDefaults()
	c.ShutdownTimeout = time.Second
	c.LogLevel = "error"
	return c
}

func TestNewApp_Errors(t *testing.T) {
	c := testConfig()
	c.LogLevel = "verbose"
	_, err := NewApp(c)
	require.Error(t, err)

	c = testConfig()
	c.TodosFile = "/nonexistent/todos.json"
	_, err = NewApp(c)
	require.Error(t, err)
}

func TestApp_ServeAndShutdown(t *testing.T) {
	app, err := NewApp(testConfig())
	require.NoError(t, err)

	listen, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.serve(ctx, listen) }()

	resp, err := http.Get("http://" + listen.Addr().String() + "/todos?_limit=5")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var todos []Todo
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&todos))
	assert.Len(t, todos, 5)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestApp_Run_BadAddress(t *testing.T) {
	c := testConfig()
	c.EndpointAddr = "not-an-address"
	app, err := NewApp(c)
	require.NoError(t, err)

	require.Error(t, app.Run(context.Background()))
}
