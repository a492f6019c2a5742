package middleware

import (
	"time"

	"soko/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

const limiterIdleExpiry = 3 * time.Minute

// NewRateLimiter allows perMinute requests per caller per minute, bursting up
// to the full minute's allowance. Authenticated callers are keyed by user id
// and anonymous ones by client IP, so it must run after Authenticate when the
// route is authenticated.
func NewRateLimiter(perMinute int) echo.MiddlewareFunc {
	store := echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Every(time.Minute / time.Duration(max(perMinute, 1))),
		Burst:     max(perMinute, 1),
		ExpiresIn: limiterIdleExpiry,
	})

	return echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store:               store,
		IdentifierExtractor: callerIdentity,
		ErrorHandler: func(c echo.Context, err error) error {
			return response.Forbidden(c, "RATE_LIMIT_IDENTITY", "Unable to identify the caller")
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return response.TooManyRequests(c, "RATE_LIMITED", "Request was throttled, try again later")
		},
	})
}

func callerIdentity(c echo.Context) (string, error) {
	if actor, ok := GetActor(c); ok {
		return "user:" + actor.UserID.String(), nil
	}

	return "ip:" + c.RealIP(), nil
}
