// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/URvesh109/example-counter/codec"
)

func TestKeypairFileRoundTrip(t *testing.T) {
	require := require.New(t)
	priv, err := GeneratePrivateKey()
	require.NoError(err)

	filename := filepath.Join(t.TempDir(), "id.json")
	require.NoError(priv.SaveKeypairFile(filename))

	info, err := os.Stat(filename)
	require.NoError(err)
	require.Equal(os.FileMode(0o600), info.Mode().Perm())

	loaded, err := LoadKeypairFile(filename)
	require.NoError(err)
	require.Equal(priv, loaded)
	require.Equal(codec.Address(priv.PublicKey()), loaded.Address())
}

func TestParseKeypairFormat(t *testing.T) {
	require := require.New(t)
	b, err := TestPrivateKey.MarshalKeypair()
	require.NoError(err)
	require.Equal(byte('['), b[0])
	require.Contains(string(b), "32,241,118,222")

	priv, err := ParseKeypair(b)
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)
}

func TestParseKeypairInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{
			name:  "not json",
			input: "not a keypair",
			err:   ErrInvalidKeypair,
		},
		{
			name:  "short",
			input: "[1,2,3]",
			err:   ErrInvalidKeypair,
		},
		{
			name:  "out of range",
			input: "[256" + repeatZeros(63) + "]",
			err:   ErrInvalidKeypair,
		},
		{
			name:  "public half mismatch",
			input: "[1" + repeatZeros(63) + "]",
			err:   ErrKeypairMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseKeypair([]byte(tt.input))
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestPrivateKeyFromSeed(t *testing.T) {
	require := require.New(t)
	priv, err := PrivateKeyFromSeed(TestPrivateKey[:PrivateKeySeedLen])
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	_, err = PrivateKeyFromSeed([]byte{1, 2, 3})
	require.ErrorIs(err, ErrInvalidPrivateKey)
}

func TestSignatureText(t *testing.T) {
	require := require.New(t)
	sig := Sign([]byte("msg"), TestPrivateKey)

	text, err := sig.MarshalText()
	require.NoError(err)

	var parsed Signature
	require.NoError(parsed.UnmarshalText(text))
	require.Equal(sig, parsed)

	_, err = StringToSignature("11111")
	require.ErrorIs(err, ErrInvalidSignature)
}

func repeatZeros(n int) string {
	s := ""
	for i := 0; i < n; i++ {
		s += ",0"
	}
	return s
}

func TestPrivateKeyFromBytes(t *testing.T) {
	require := require.New(t)
	priv, err := PrivateKeyFromBytes(TestPrivateKey[:])
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	_, err = PrivateKeyFromBytes(TestPrivateKey[:PrivateKeySeedLen])
	require.ErrorIs(err, ErrInvalidPrivateKey)

	corrupt := TestPrivateKey
	corrupt[PrivateKeyLen-1] ^= 0xff
	_, err = PrivateKeyFromBytes(corrupt[:])
	require.ErrorIs(err, ErrKeypairMismatch)
}
