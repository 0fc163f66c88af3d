package tally_test

import (
	"context"
	"errors"
	"testing"
	"time"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"github.com/stretchr/testify/assert"

	"github.com/axelarnetwork/fhevote/voter/tally"
	"github.com/axelarnetwork/fhevote/voter/tally/mock"
	votetypes "github.com/axelarnetwork/fhevote/voter/types"
	. "github.com/axelarnetwork/utils/test"
	"github.com/axelarnetwork/utils/test/rand"
)

func TestReconciler_Refresh(t *testing.T) {
	var (
		reconciler *tally.Reconciler
		source     *mock.SourceMock
		ciphertext []byte
		view       tally.View
		err        error
	)

	givenSource := Given("a tally source with a ciphertext", func() {
		reconciler = tally.NewReconciler(log.NewNopLogger())
		ciphertext = rand.Bytes(int(rand.I64Between(1, 100)))
		source = &mock.SourceMock{
			GetEncryptedTotalFunc: func(context.Context) ([]byte, error) { return ciphertext, nil },
		}
	})

	refresh := When("the tally is refreshed", func() {
		view, err = reconciler.Refresh(context.Background(), source)
	})

	givenSource.
		Branch(
			When("the plaintext is readable", func() {
				source.GetDecryptedTotalFunc = func(context.Context) (uint32, error) { return 7, nil }
			}).
				When2(refresh).
				Then("both totals are shown", func(t *testing.T) {
					assert.NoError(t, err)
					assert.Equal(t, ciphertext, view.Ciphertext)
					assert.Equal(t, tally.Value{N: 7}, view.Plaintext)
					assert.Equal(t, "7", tally.FormatPlaintext(view))
				}),

			When("decryption is not permitted", func() {
				source.GetDecryptedTotalFunc = func(context.Context) (uint32, error) {
					return 0, errorsmod.Wrap(votetypes.ErrPermissionDenied, "execution reverted")
				}
			}).
				When2(refresh).
				Then("the view degrades without failing", func(t *testing.T) {
					assert.NoError(t, err)
					assert.Equal(t, ciphertext, view.Ciphertext)
					assert.Equal(t, tally.PermissionDenied{}, view.Plaintext)
					assert.Equal(t, "No decryption permissions", tally.FormatPlaintext(view))
				}),

			When("the plaintext read fails otherwise", func() {
				source.GetDecryptedTotalFunc = func(context.Context) (uint32, error) {
					return 0, errorsmod.Wrap(votetypes.ErrRemoteCallFailed, "timeout")
				}
			}).
				When2(refresh).
				Then("the ciphertext is still shown", func(t *testing.T) {
					assert.NoError(t, err)
					assert.Equal(t, ciphertext, view.Ciphertext)
					assert.IsType(t, tally.FetchFailed{}, view.Plaintext)
					assert.ErrorIs(t, view.Plaintext.(tally.FetchFailed).Reason, votetypes.ErrRemoteCallFailed)
					assert.Equal(t, "Unavailable", tally.FormatPlaintext(view))
				}),

			When("the ciphertext read fails", func() {
				source.GetEncryptedTotalFunc = func(context.Context) ([]byte, error) { return nil, errors.New("connection refused") }
				source.GetDecryptedTotalFunc = func(context.Context) (uint32, error) { return 7, nil }
			}).
				When2(refresh).
				Then("the refresh fails without reading the plaintext", func(t *testing.T) {
					assert.ErrorIs(t, err, votetypes.ErrRemoteCallFailed)
					assert.Empty(t, source.GetDecryptedTotalCalls())
					assert.False(t, view.HasCiphertext())
					assert.NotZero(t, view.AsOf)
				}),
		).
		Run(t, 5)
}

func TestReconciler_RefreshIsStampedAtIssue(t *testing.T) {
	reconciler := tally.NewReconciler(log.NewNopLogger())
	latest := tally.NewLatest()

	release := make(chan struct{})
	slow := &mock.SourceMock{
		GetEncryptedTotalFunc: func(context.Context) ([]byte, error) {
			<-release
			return []byte("old"), nil
		},
		GetDecryptedTotalFunc: func(context.Context) (uint32, error) { return 1, nil },
	}
	fast := &mock.SourceMock{
		GetEncryptedTotalFunc: func(context.Context) ([]byte, error) { return []byte("new"), nil },
		GetDecryptedTotalFunc: func(context.Context) (uint32, error) { return 2, nil },
	}

	slowDone := make(chan tally.View)
	go func() {
		view, err := reconciler.Refresh(context.Background(), slow)
		assert.NoError(t, err)
		slowDone <- view
	}()

	// wait for the slow refresh to be issued before starting the fast one
	assert.Eventually(t, func() bool { return len(slow.GetEncryptedTotalCalls()) == 1 }, time.Second, time.Millisecond)

	newer, err := reconciler.Refresh(context.Background(), fast)
	assert.NoError(t, err)
	assert.True(t, latest.Set(newer))

	close(release)
	older := <-slowDone
	assert.Less(t, older.AsOf, newer.AsOf)
	assert.False(t, latest.Set(older))

	assert.Equal(t, []byte("new"), latest.Get().Ciphertext)
	assert.Equal(t, tally.Value{N: 2}, latest.Get().Plaintext)
}

func TestLatest(t *testing.T) {
	latest := tally.NewLatest()
	assert.Equal(t, tally.Empty(), latest.Get())
	assert.Equal(t, "Loading...", tally.FormatCiphertext(latest.Get()))
	assert.Equal(t, "Connect to view", tally.FormatPlaintext(latest.Get()))

	assert.True(t, latest.Set(tally.View{Ciphertext: []byte{1}, Plaintext: tally.Value{N: 1}, AsOf: 2}))
	assert.False(t, latest.Set(tally.View{Ciphertext: []byte{2}, Plaintext: tally.Value{N: 2}, AsOf: 2}))
	assert.False(t, latest.Set(tally.View{Ciphertext: []byte{3}, Plaintext: tally.Value{N: 3}, AsOf: 1}))
	assert.Equal(t, []byte{1}, latest.Get().Ciphertext)

	// modifying the returned view does not leak into the holder
	view := latest.Get()
	view.Ciphertext[0] = 9
	assert.Equal(t, []byte{1}, latest.Get().Ciphertext)

	latest.Reset()
	assert.False(t, latest.Get().HasCiphertext())
	assert.False(t, latest.Set(tally.View{Ciphertext: []byte{4}, AsOf: 2}))
	assert.True(t, latest.Set(tally.View{Ciphertext: []byte{4}, AsOf: 3}))
}

func TestFormatCiphertext(t *testing.T) {
	short := tally.View{Ciphertext: []byte{0xab, 0xcd}}
	assert.Equal(t, "0xabcd...", tally.FormatCiphertext(short))

	long := tally.View{Ciphertext: make([]byte, 64)}
	long.Ciphertext[0] = 0xff
	assert.Equal(t, "0xff0000000000000000000000...", tally.FormatCiphertext(long))

	assert.Equal(t, "0x...", tally.FormatCiphertext(tally.View{Ciphertext: []byte{}}))
}
