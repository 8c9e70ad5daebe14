// Package constituents resolves an index name to its ordered list of
// ticker symbols, falling back to a hardcoded list when the remote
// source is unreachable or malformed.
package constituents

import (
	"context"

	"github.com/guttosm/indexpulse/internal/domain/faults"
	"github.com/guttosm/indexpulse/internal/domain/models"
	"github.com/guttosm/indexpulse/internal/logger"
)

// Provider supplies the symbols of one index.
//
// A provider may be remote-backed (NIFTY 50, downloaded from the
// exchange archives) or purely static (SENSEX 30). Both satisfy the
// same contract; a static provider simply returns its list with
// SourceFallback and never errors.
type Provider interface {
	// Index returns the index this provider serves.
	Index() models.IndexKind

	// Fetch returns the symbols from the primary source. A non-nil
	// error means the resolver must use Fallback instead; the error's
	// fault kind says why.
	Fetch(ctx context.Context) ([]string, models.Source, error)

	// Fallback returns the hardcoded, always-available list.
	Fallback() []string
}

// Resolver maps an IndexKind to a ConstituentList.
type Resolver interface {
	Resolve(ctx context.Context, index models.IndexKind) (models.ConstituentList, error)
}

type resolver struct {
	providers map[models.IndexKind]Provider
}

// NewResolver builds a Resolver over the given providers.
func NewResolver(providers ...Provider) Resolver {
	m := make(map[models.IndexKind]Provider, len(providers))
	for _, p := range providers {
		m[p.Index()] = p
	}
	return &resolver{providers: m}
}

// Resolve returns the constituent list for an index.
//
// Behavior:
//   - Unknown index → error (the only failing path; it means bad input,
//     not upstream degradation).
//   - Provider fetch failure of any kind (network, HTTP status, schema
//     mismatch, parse error) → fallback list tagged SourceFallback. The
//     failure is logged with its fault kind and never propagated:
//     constituent-list unavailability must not prevent the system from
//     returning some data.
func (r *resolver) Resolve(ctx context.Context, index models.IndexKind) (models.ConstituentList, error) {
	p, ok := r.providers[index]
	if !ok {
		return models.ConstituentList{}, faults.Newf(faults.Unknown, "unknown index %q", index)
	}

	symbols, source, err := p.Fetch(ctx)
	if err != nil {
		logger.L().Warn().
			Str("index", string(index)).
			Str("fault", faults.KindOf(err).String()).
			Err(err).
			Msg("constituent fetch failed, using fallback list")
		return models.ConstituentList{
			Index:   index,
			Symbols: p.Fallback(),
			Source:  models.SourceFallback,
		}, nil
	}

	return models.ConstituentList{Index: index, Symbols: symbols, Source: source}, nil
}
