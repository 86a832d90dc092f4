package cipher

import (
	"strings"
	"testing"

	"chat-app/errors"

	"github.com/stretchr/testify/require"
)

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	texts := []string{"", "hi", "Привет, как дела?", "emoji 🎉 and\nnew lines", strings.Repeat("a", 4096)}
	for _, text := range texts {
		req := require.New(t)
		key, err := GenerateKey()
		req.NoError(err)

		sealed, err := Encrypt(text, key)
		req.NoError(err)
		req.Contains(sealed, separator)

		plain, err := Decrypt(sealed, key)
		req.NoError(err)
		req.Equal(text, plain)
	}
}

func TestEncrypt_FreshNoncePerCall(t *testing.T) {
	req := require.New(t)
	key, err := GenerateKey()
	req.NoError(err)

	first, err := Encrypt("same text", key)
	req.NoError(err)
	second, err := Encrypt("same text", key)
	req.NoError(err)

	// Then the same plaintext never produces the same sealed text
	req.NotEqual(first, second)
}

func TestDecrypt_WrongKeyFails(t *testing.T) {
	req := require.New(t)
	key, err := GenerateKey()
	req.NoError(err)
	otherKey, err := GenerateKey()
	req.NoError(err)

	sealed, err := Encrypt("secret", key)
	req.NoError(err)

	plain, err := Decrypt(sealed, otherKey)
	req.ErrorIs(err, errors.ErrDecryption)
	req.Empty(plain)
}

func TestDecrypt_MalformedInput(t *testing.T) {
	req := require.New(t)
	key, err := GenerateKey()
	req.NoError(err)
	sealed, err := Encrypt("secret", key)
	req.NoError(err)
	body, nonce, _ := strings.Cut(sealed, separator)
	flipped := "00"
	if strings.HasPrefix(body, flipped) {
		flipped = "ff"
	}

	cases := map[string]string{
		"no separator":      body,
		"non hex body":      "zz" + separator + nonce,
		"non hex nonce":     body + separator + "xyz",
		"short nonce":       body + separator + nonce[:10],
		"tampered body":     flipped + body[2:] + separator + nonce,
		"empty sealed text": "",
	}
	for name, input := range cases {
		_, err := Decrypt(input, key)
		req.ErrorIs(err, errors.ErrDecryption, name)
	}

	_, err = Decrypt(sealed, "not-a-key")
	req.ErrorIs(err, errors.ErrDecryption)
}
