package tracker

import (
	"context"

	"github.com/cenkalti/backoff/v4"

	"github.com/ifml-editor-alpha/platformkit/core"
	"github.com/ifml-editor-alpha/platformkit/errors"
)

// Await blocks until a service instance for the pair is available, polling
// under exponential backoff. It returns early when stdctx is done or the
// lookup fails permanently; transient failures (and "no instance yet") keep
// the loop alive.
func (c *Cache) Await(stdctx context.Context, ctx core.Context, typeName string) (any, error) {
	var inst any
	op := func() error {
		v, ok, err := c.Get(ctx, typeName)
		if err != nil {
			if errors.IsRetryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		if !ok {
			return errors.Newf(errors.CodeUnavailable, "no instance registered for %q", typeName)
		}
		inst = v
		return nil
	}
	bo := backoff.WithContext(backoff.NewExponentialBackOff(), stdctx)
	if err := backoff.Retry(op, bo); err != nil {
		return nil, err
	}
	return inst, nil
}
