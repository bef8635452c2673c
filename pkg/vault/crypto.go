package vault

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"io"
	"unicode/utf8"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/fio-ynab-importer/pkg/common"
)

const keySize = 32

// deriveKey truncates or zero-pads the secret to an AES-256 key.
func deriveKey(secret string) []byte {
	key := make([]byte, keySize)
	copy(key, secret)

	return key
}

// Encrypt returns base64(IV || AES-256-CBC(PKCS7(plaintext))) with a random IV.
func (v *Vault) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))

	iv := out[:aes.BlockSize]
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return "", errors.Wrap(err, "failed to generate iv")
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)

	return base64.StdEncoding.EncodeToString(out), nil
}

func (v *Vault) Decrypt(ciphertext string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errors.Wrap(common.ErrDecryption, "invalid base64")
	}

	if len(raw) < 2*aes.BlockSize || len(raw)%aes.BlockSize != 0 {
		return "", errors.Wrapf(common.ErrDecryption, "invalid ciphertext length %d", len(raw))
	}

	block, err := aes.NewCipher(v.key)
	if err != nil {
		return "", errors.WithStack(err)
	}

	iv := raw[:aes.BlockSize]
	data := make([]byte, len(raw)-aes.BlockSize)
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(data, raw[aes.BlockSize:])

	plain, err := pkcs7Unpad(data, aes.BlockSize)
	if err != nil {
		return "", err
	}

	// a wrong key passes the padding check now and then
	if !utf8.Valid(plain) {
		return "", errors.Wrap(common.ErrDecryption, "decrypted token is not valid utf-8")
	}

	return string(plain), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize

	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(common.ErrDecryption, "empty payload")
	}

	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize || padding > len(data) {
		return nil, errors.Wrap(common.ErrDecryption, "invalid padding")
	}

	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errors.Wrap(common.ErrDecryption, "invalid padding")
		}
	}

	return data[:len(data)-padding], nil
}
