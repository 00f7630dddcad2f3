package ratelimiter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var (
	now          = "2026-10-14T15:00:00Z"
	validTime, _ = time.Parse(time.RFC3339, now)
)

func mockNow() time.Time {
	return validTime
}

var sharedTestCases = map[string]struct {
	sourceIPLimit     float64
	sourceIPBurstSize int
	reqNum            int
	proxied           bool
}{
	"one_request_per_second": {
		sourceIPLimit:     1,
		sourceIPBurstSize: 1,
		reqNum:            2,
	},
	"one_request_per_second_but_big_bucket": {
		sourceIPLimit:     1,
		sourceIPBurstSize: 10,
		reqNum:            11,
	},
	"three_req_per_second_bucket_size_one": {
		sourceIPLimit:     3,
		sourceIPBurstSize: 1,
		reqNum:            3,
	},
	"10_requests_per_second_proxied": {
		sourceIPLimit:     10,
		sourceIPBurstSize: 10,
		reqNum:            11,
		proxied:           true,
	},
}

func TestSourceIPAllowed(t *testing.T) {
	t.Parallel()

	for tn, tc := range sharedTestCases {
		tc := tc

		t.Run(tn, func(t *testing.T) {
			rl := New(
				tc.sourceIPLimit,
				WithNow(mockNow),
				WithSourceIPBurstSize(tc.sourceIPBurstSize),
			)
			defer rl.Stop()

			for i := 0; i < tc.reqNum; i++ {
				got := rl.SourceIPAllowed("172.16.123.1")
				if i < tc.sourceIPBurstSize {
					require.Truef(t, got, "expected true for request no. %d", i+1)
				} else {
					require.Falsef(t, got, "expected false for request no. %d", i+1)
				}
			}
		})
	}
}

func TestSourceIPAllowedPerIP(t *testing.T) {
	rl := New(1, WithNow(mockNow), WithSourceIPBurstSize(1))
	defer rl.Stop()

	require.True(t, rl.SourceIPAllowed("172.16.123.1"))
	require.False(t, rl.SourceIPAllowed("172.16.123.1"))
	require.True(t, rl.SourceIPAllowed("172.16.123.2"))
}

func TestSourceIPAllowedRefills(t *testing.T) {
	current := validTime
	rl := New(1, WithNow(func() time.Time { return current }), WithSourceIPBurstSize(1))
	defer rl.Stop()

	require.True(t, rl.SourceIPAllowed("172.16.123.1"))
	require.False(t, rl.SourceIPAllowed("172.16.123.1"))

	current = current.Add(time.Second)
	require.True(t, rl.SourceIPAllowed("172.16.123.1"))
}
