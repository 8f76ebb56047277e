package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/bancas-dashboard/internal/bancas"
)

func testRender(t *testing.T) ViewFunc {
	ds, err := bancas.NewDataset([]bancas.Record{
		{Row: 2, OwnerName: "Carlos", ShopName: "Banca Sé", Coordinates: "-23.55, -46.63", BetsPerDay: 10, ValuePerBet: 5,
			NetWorth: "1", ActiveDebt: "0", LicenseRenewal: "2025-01-11"},
	})
	require.NoError(t, err)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	return func(ctx context.Context, sel bancas.Selection, channel, session string) (*bancas.View, error) {
		assert.Equal(t, "ws", channel)
		assert.NotEmpty(t, session)
		return bancas.Render(ds, sel, now)
	}
}

func dial(t *testing.T, h http.Handler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSession_SelectInOrder(t *testing.T) {
	var open int32
	h := NewHandler(zap.NewNop(), testRender(t), func(*http.Request) bool { return true })
	h.OnConnect = func() { atomic.AddInt32(&open, 1) }
	h.OnDisconnect = func() { atomic.AddInt32(&open, -1) }
	conn := dial(t, h)

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "select", Owners: []string{"Carlos"}, Days: "3"}))
	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "select", Owners: []string{"Carlos"}, Days: "abc"}))

	var first, second ServerMsg
	require.NoError(t, conn.ReadJSON(&first))
	require.NoError(t, conn.ReadJSON(&second))

	require.Equal(t, "view", first.Type)
	assert.Equal(t, 3, first.View.SimulatedDays)
	sim, ok := first.View.Chart(bancas.ChartSimulation)
	require.True(t, ok)
	assert.Equal(t, 150.0, sim.Series[0].Points[0].Value)

	require.Equal(t, "view", second.Type)
	assert.Equal(t, 0, second.View.SimulatedDays)
	assert.Equal(t, bancas.DaysValidationMessage, second.View.Validation)
	assert.Equal(t, int32(1), atomic.LoadInt32(&open))
}

func TestSession_PingAndErrors(t *testing.T) {
	conn := dial(t, NewHandler(zap.NewNop(), testRender(t), func(*http.Request) bool { return true }))

	var msg ServerMsg
	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "ping"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "pong", msg.Type)

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "select", Owners: []string{"Zé"}}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
	assert.Contains(t, msg.Error, "unknown owner")

	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "subscribe"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, "error", msg.Type)
}

func TestSession_EmptySelection(t *testing.T) {
	conn := dial(t, NewHandler(zap.NewNop(), testRender(t), func(*http.Request) bool { return true }))

	var msg ServerMsg
	require.NoError(t, conn.WriteJSON(ClientMsg{Type: "select"}))
	require.NoError(t, conn.ReadJSON(&msg))
	require.Equal(t, "view", msg.Type)
	assert.Empty(t, msg.View.Charts)
}
