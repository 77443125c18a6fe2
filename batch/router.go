package batch

import (
	"context"
	"errors"

	"github.com/fwojciec/kcparse"
)

var _ kcparse.Fetcher = (*Router)(nil)

// Router sends http(s) sources to Remote and everything else to Local.
type Router struct {
	Local  kcparse.Fetcher
	Remote kcparse.Fetcher
}

// Fetch delegates to the fetcher responsible for source.
func (r *Router) Fetch(ctx context.Context, source string) (string, error) {
	if IsRemote(source) {
		if r.Remote == nil {
			return "", kcparse.Errorf(kcparse.EINVALID, "remote sources are not enabled: %s", source)
		}
		return r.Remote.Fetch(ctx, source)
	}
	if r.Local == nil {
		return "", kcparse.Errorf(kcparse.EINVALID, "local sources are not enabled: %s", source)
	}
	return r.Local.Fetch(ctx, source)
}

// Close closes both fetchers.
func (r *Router) Close() error {
	var errs []error
	for _, f := range []kcparse.Fetcher{r.Local, r.Remote} {
		if f != nil {
			errs = append(errs, f.Close())
		}
	}
	return errors.Join(errs...)
}
