package resolver

import (
	"context"
	"net/url"
	"testing"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fastlp/internal/advancer/models"
	"fastlp/internal/advancer/ports"
	"fastlp/internal/advancer/ports/mocks"
	dErrors "fastlp/pkg/domain-errors"
	"fastlp/pkg/platform/sentinel"
)

func mustAddr(t *testing.T, hrp string, seed byte) string {
	t.Helper()
	raw := make([]byte, 20)
	for i := range raw {
		raw[i] = seed
	}
	converted, err := bech32.ConvertBits(raw, 8, 5, true)
	require.NoError(t, err)
	addr, err := bech32.Encode(hrp, converted)
	require.NoError(t, err)
	return addr
}

func mustHook(t *testing.T, base string, query url.Values) string {
	t.Helper()
	hook, err := EncodeAddressHook(base, query)
	require.NoError(t, err)
	return hook
}

func evidenceWithHook(hook string) models.Evidence {
	return models.Evidence{
		TxID: models.TxID("0xabc"),
		SourceTransfer: models.SourceTransfer{
			Amount:            150_000_000,
			ForwardingAddress: "noble1fwd",
		},
		Aux: models.Auxiliary{RecipientAddressHook: hook},
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	hub := mocks.NewMockChainHub(ctrl)

	settlement := mustAddr(t, "agoric", 0x01)
	eud := mustAddr(t, "osmo", 0x02)
	r := New(hub, settlement)

	t.Run("resolves a remote destination", func(t *testing.T) {
		hub.EXPECT().LookupChainByPrefix(gomock.Any(), "osmo").
			Return(ports.ChainInfo{ChainID: "osmosis-1", Encoding: models.EncodingBech32}, nil)

		hook := mustHook(t, settlement, url.Values{"EUD": {eud}})
		dest, err := r.Resolve(ctx, evidenceWithHook(hook))
		require.NoError(t, err)

		assert.Equal(t, "osmosis-1", dest.ChainID)
		assert.Equal(t, models.EncodingBech32, dest.Encoding)
		assert.Equal(t, eud, dest.Value)
	})

	t.Run("undecodable hook", func(t *testing.T) {
		_, err := r.Resolve(ctx, evidenceWithHook("not-a-hook"))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDestination))
	})

	t.Run("plain address without hook payload", func(t *testing.T) {
		_, err := r.Resolve(ctx, evidenceWithHook(settlement))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDestination))
	})

	t.Run("base address mismatch is rejected", func(t *testing.T) {
		other := mustAddr(t, "agoric", 0x09)
		hook := mustHook(t, other, url.Values{"EUD": {eud}})

		_, err := r.Resolve(ctx, evidenceWithHook(hook))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDestination))
		assert.Contains(t, err.Error(), "settlement address")
	})

	t.Run("missing EUD", func(t *testing.T) {
		hook := mustHook(t, settlement, url.Values{})
		_, err := r.Resolve(ctx, evidenceWithHook(hook))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDestination))
		assert.Contains(t, err.Error(), "EUD")
	})

	t.Run("extra hook parameters are rejected", func(t *testing.T) {
		hook := mustHook(t, settlement, url.Values{"EUD": {eud}, "memo": {"hi"}})
		_, err := r.Resolve(ctx, evidenceWithHook(hook))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDestination))
	})

	t.Run("EUD that is not bech32", func(t *testing.T) {
		hook := mustHook(t, settlement, url.Values{"EUD": {"0xdeadbeef"}})
		_, err := r.Resolve(ctx, evidenceWithHook(hook))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDestination))
	})

	t.Run("unknown prefix", func(t *testing.T) {
		hub.EXPECT().LookupChainByPrefix(gomock.Any(), "osmo").
			Return(ports.ChainInfo{}, sentinel.ErrNotFound)

		hook := mustHook(t, settlement, url.Values{"EUD": {eud}})
		_, err := r.Resolve(ctx, evidenceWithHook(hook))
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidDestination))
	})
}

func TestAddressHookRoundTrip(t *testing.T) {
	base := mustAddr(t, "agoric", 0x03)
	eud := mustAddr(t, "noble", 0x04)

	hook, err := EncodeAddressHook(base, url.Values{"EUD": {eud}})
	require.NoError(t, err)

	gotBase, gotQuery, err := DecodeAddressHook(hook)
	require.NoError(t, err)
	assert.Equal(t, base, gotBase)
	assert.Equal(t, eud, gotQuery.Get("EUD"))
}
