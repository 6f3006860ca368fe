// Package resolver derives the routable destination for an advance from the
// recipient address hook carried in deposit evidence.
package resolver

import (
	"context"

	"github.com/btcsuite/btcd/btcutil/bech32"

	"fastlp/internal/advancer/models"
	"fastlp/internal/advancer/ports"
	dErrors "fastlp/pkg/domain-errors"
)

// eudKey is the only query parameter an address hook may carry: the
// end-user destination address.
const eudKey = "EUD"

// Resolver validates address hooks against the configured settlement address
// and resolves chain routing metadata for the end-user destination.
// Side-effect free given a ChainHub snapshot.
type Resolver struct {
	hub               ports.ChainHub
	settlementAddress string
}

func New(hub ports.ChainHub, settlementAddress string) *Resolver {
	return &Resolver{hub: hub, settlementAddress: settlementAddress}
}

// Resolve turns evidence into a ResolvedDestination. All failures carry
// CodeInvalidDestination so the engine can classify them as precondition
// errors: no funds have moved yet.
func (r *Resolver) Resolve(ctx context.Context, evidence models.Evidence) (models.ResolvedDestination, error) {
	base, query, err := DecodeAddressHook(evidence.Aux.RecipientAddressHook)
	if err != nil {
		return models.ResolvedDestination{}, dErrors.Wrap(err, dErrors.CodeInvalidDestination,
			"recipient address hook is not decodable")
	}

	// Identity spoofing guard: the hook must address this settlement account.
	if base != r.settlementAddress {
		return models.ResolvedDestination{}, dErrors.Newf(dErrors.CodeInvalidDestination,
			"hook base address %q does not match settlement address", base)
	}

	eud, err := extractEUD(query)
	if err != nil {
		return models.ResolvedDestination{}, err
	}

	prefix, _, err := bech32.DecodeNoLimit(eud)
	if err != nil {
		return models.ResolvedDestination{}, dErrors.Wrap(err, dErrors.CodeInvalidDestination,
			"end-user destination is not a bech32 address")
	}

	info, err := r.hub.LookupChainByPrefix(ctx, prefix)
	if err != nil {
		return models.ResolvedDestination{}, dErrors.Wrap(err, dErrors.CodeInvalidDestination,
			"no chain registered for prefix "+prefix)
	}

	return models.ResolvedDestination{
		ChainID:  info.ChainID,
		Encoding: info.Encoding,
		Value:    eud,
	}, nil
}

// extractEUD enforces the strict hook shape: exactly the EUD key, one value,
// nothing else.
func extractEUD(query map[string][]string) (string, error) {
	values, ok := query[eudKey]
	if !ok {
		return "", dErrors.New(dErrors.CodeInvalidDestination, "address hook is missing EUD")
	}
	if len(values) != 1 || values[0] == "" {
		return "", dErrors.New(dErrors.CodeInvalidDestination, "address hook EUD must have exactly one value")
	}
	if len(query) != 1 {
		return "", dErrors.Newf(dErrors.CodeInvalidDestination,
			"address hook carries %d unexpected parameters", len(query)-1)
	}
	return values[0], nil
}
