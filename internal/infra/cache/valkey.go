package cache

import (
	"context"
	"time"

	"soko/internal/errors"

	"github.com/valkey-io/valkey-go"
)

// Valkey is a service.Cache backed by a Valkey (Redis compatible) server.
type Valkey struct {
	client valkey.Client
}

// NewValkey connects to addr.
func NewValkey(addr string) (*Valkey, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress: []string{addr},
	})
	if err != nil {
		return nil, errors.Wrap(err, "valkey connect")
	}

	return &Valkey{client: client}, nil
}

// Get returns found=false when the key does not exist.
func (c *Valkey) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := c.client.Do(ctx, c.client.B().Get().Key(key).Build()).AsBytes()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}

		return nil, false, errors.Wrapf(err, "valkey get %s", key)
	}

	return b, true, nil
}

// Set stores value for ttl.
func (c *Valkey) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	cmd := c.client.B().Set().Key(key).Value(valkey.BinaryString(value)).Ex(ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		return errors.Wrapf(err, "valkey set %s", key)
	}

	return nil
}

// Close releases the client.
func (c *Valkey) Close() error {
	c.client.Close()

	return nil
}
