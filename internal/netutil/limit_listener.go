// Package netutil caps the connections open across a set of listeners.
package netutil

import (
	"errors"
	"net"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var errKeepaliveNotSupported = errors.New("keepalive not supported")

// Limiter is a pool of connection slots shared by every listener wrapped
// with it
type Limiter struct {
	slots   chan struct{}
	open    prometheus.Gauge
	waiting prometheus.Gauge
}

// NewLimiter creates a pool of n slots. limit is set to n, open and waiting
// track the connections holding and awaiting a slot.
func NewLimiter(n int, limit, open, waiting prometheus.Gauge) *Limiter {
	limit.Set(float64(n))

	return &Limiter{
		slots:   make(chan struct{}, n),
		open:    open,
		waiting: waiting,
	}
}

// LimitListener accepts a connection from listener only once limiter has a
// free slot. The slot is released when the connection is closed.
func LimitListener(listener net.Listener, limiter *Limiter) net.Listener {
	return &limitListener{
		Listener: listener,
		limiter:  limiter,
		done:     make(chan struct{}),
	}
}

type limitListener struct {
	net.Listener
	limiter   *Limiter
	closeOnce sync.Once
	done      chan struct{}
}

// acquire reports false when the listener closed while waiting for a slot
func (l *limitListener) acquire() bool {
	l.limiter.waiting.Inc()
	defer l.limiter.waiting.Dec()

	select {
	case <-l.done:
		return false
	case l.limiter.slots <- struct{}{}:
		l.limiter.open.Inc()
		return true
	}
}

func (l *limitListener) release() {
	<-l.limiter.slots
	l.limiter.open.Dec()
}

func (l *limitListener) Accept() (net.Conn, error) {
	acquired := l.acquire()

	// a closed listener fails Accept right away
	c, err := l.Listener.Accept()
	if err != nil {
		if acquired {
			l.release()
		}

		return nil, err
	}

	tcpConn, _ := c.(*net.TCPConn)

	return &limitListenerConn{
		Conn:    c,
		tcpConn: tcpConn,
		release: l.release,
	}, nil
}

func (l *limitListener) Close() error {
	err := l.Listener.Close()
	l.closeOnce.Do(func() { close(l.done) })

	return err
}

type limitListenerConn struct {
	net.Conn
	tcpConn     *net.TCPConn
	releaseOnce sync.Once
	release     func()
}

func (c *limitListenerConn) Close() error {
	err := c.Conn.Close()
	c.releaseOnce.Do(c.release)

	return err
}

// SetKeepAlive lets keep-alive listeners configure the underlying TCP connection
func (c *limitListenerConn) SetKeepAlive(enabled bool) error {
	if c.tcpConn == nil {
		return errKeepaliveNotSupported
	}

	return c.tcpConn.SetKeepAlive(enabled)
}

// SetKeepAlivePeriod lets keep-alive listeners configure the underlying TCP connection
func (c *limitListenerConn) SetKeepAlivePeriod(period time.Duration) error {
	if c.tcpConn == nil {
		return errKeepaliveNotSupported
	}

	return c.tcpConn.SetKeepAlivePeriod(period)
}
