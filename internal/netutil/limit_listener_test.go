package netutil

import (
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(n int) (*Limiter, prometheus.Gauge, prometheus.Gauge, prometheus.Gauge) {
	limit := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_limit"})
	open := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_open"})
	waiting := prometheus.NewGauge(prometheus.GaugeOpts{Name: "test_waiting"})

	return NewLimiter(n, limit, open, waiting), limit, open, waiting
}

func dial(t *testing.T, addr string) net.Conn {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)

	return conn
}

func TestLimitListener(t *testing.T) {
	limiter, limit, open, waiting := newTestLimiter(1)

	tcp, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ln := LimitListener(tcp, limiter)
	defer ln.Close()

	require.Equal(t, float64(1), testutil.ToFloat64(limit))

	client1 := dial(t, ln.Addr().String())
	defer client1.Close()

	first, err := ln.Accept()
	require.NoError(t, err)
	require.Equal(t, float64(1), testutil.ToFloat64(open))

	client2 := dial(t, ln.Addr().String())
	defer client2.Close()

	accepted := make(chan net.Conn)
	go func() {
		conn, err := ln.Accept()
		if err == nil {
			accepted <- conn
		}
	}()

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(waiting) == 1
	}, time.Second, 10*time.Millisecond)

	select {
	case <-accepted:
		t.Fatal("second connection accepted while the only slot is held")
	case <-time.After(50 * time.Millisecond):
	}

	require.NoError(t, first.Close())

	select {
	case second := <-accepted:
		require.NoError(t, second.Close())
	case <-time.After(time.Second):
		t.Fatal("second connection not accepted after the slot was released")
	}

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(open) == 0
	}, time.Second, 10*time.Millisecond)
}

func TestLimitListenerClose(t *testing.T) {
	limiter, _, _, _ := newTestLimiter(1)

	tcp, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ln := LimitListener(tcp, limiter)
	require.NoError(t, ln.Close())

	_, err = ln.Accept()
	require.Error(t, err)
}

func TestKeepAlive(t *testing.T) {
	limiter, _, _, _ := newTestLimiter(1)

	tcp, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ln := LimitListener(tcp, limiter)
	defer ln.Close()

	client := dial(t, ln.Addr().String())
	defer client.Close()

	conn, err := ln.Accept()
	require.NoError(t, err)
	defer conn.Close()

	ka, ok := conn.(interface {
		SetKeepAlive(bool) error
		SetKeepAlivePeriod(time.Duration) error
	})
	require.True(t, ok)
	require.NoError(t, ka.SetKeepAlive(true))
	require.NoError(t, ka.SetKeepAlivePeriod(time.Minute))
}
