package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/xy-planning-network/terminus/fault"
)

const (
	// DefaultRate is the number of requests per second a Visitor may make.
	DefaultRate rate.Limit = 5

	// DefaultBurst is the number of requests a Visitor may make at once.
	DefaultBurst = 20

	visitorTTL = 60 * time.Minute
)

// A Visitor tracks a rate limiter and last seen time.
type Visitor struct {
	LastSeen time.Time
	Limiter  *rate.Limiter
}

// A Visitors maps a Visitor to an IP address.
type Visitors struct {
	burst int
	limit rate.Limit
	val   map[string]Visitor
	sync.Mutex
}

// NewVisitors constructs a *Visitors whose each Visitor is limited to
// limit requests every second with bursts of up to burst.
//
// A non-positive limit or burst uses DefaultRate or DefaultBurst.
func NewVisitors(limit rate.Limit, burst int) *Visitors {
	if limit <= 0 {
		limit = DefaultRate
	}

	if burst <= 0 {
		burst = DefaultBurst
	}

	return &Visitors{burst: burst, limit: limit, val: make(map[string]Visitor)}
}

// Fetch retrieves the Visitor for the given ip creating a new Visitor if not seen.
func (vs *Visitors) Fetch(ip string) Visitor {
	vs.Lock()
	defer vs.Unlock()

	v, ok := vs.val[ip]
	if !ok {
		v = Visitor{Limiter: rate.NewLimiter(vs.limit, vs.burst)}
	}

	v.LastSeen = time.Now().UTC()
	vs.val[ip] = v
	return v
}

// Len is the number of Visitors tracked.
func (vs *Visitors) Len() int {
	vs.Lock()
	defer vs.Unlock()

	return len(vs.val)
}

// cleanup deletes a Visitor from Visitors if they have not been seen in over an hour.
func (vs *Visitors) cleanup() {
	vs.Lock()
	defer vs.Unlock()
	for ip, v := range vs.val {
		if time.Since(v.LastSeen) > visitorTTL {
			delete(vs.val, ip)
		}
	}
}

// RateLimit encloses the Visitors map and serves the http.Handler
//
// A visitor over its limit is answered by rp with a plain fault:
// status http.StatusTooManyRequests and a "Retry-After" header
// holding the seconds until the next request is allowed.
//
// NOTE: implementation found here:
// https://www.alexedwards.net/blog/how-to-rate-limit-http-requests
func RateLimit(rp errResponder, visitors *Visitors) Adapter {
	if rp == nil || visitors == nil {
		return NoopAdapter
	}

	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res := visitors.Fetch(GetIPAddress(r.Header)).Limiter.Reserve()
			if delay := res.Delay(); delay > 0 {
				res.Cancel()
				rp.Err(w, r, tooManyRequests(delay))
				return
			}

			visitors.cleanup()
			h.ServeHTTP(w, r)
		})
	}
}

func tooManyRequests(delay time.Duration) *fault.Plain {
	secs := int(math.Ceil(delay.Seconds()))
	if secs < 1 {
		secs = 1
	}

	return fault.NewPlain(
		"too many requests",
		fault.WithStatus(http.StatusTooManyRequests),
		fault.WithHeader("Retry-After", strconv.Itoa(secs)),
	)
}
