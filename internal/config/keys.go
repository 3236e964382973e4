package config

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

const generatedKeyBits = 2048

type signingKeys struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// loadSigningKeys reads the base64 encoded PEM pair from the environment.
// Without them production refuses to start and other environments get an
// ephemeral pair, which invalidates every token on restart.
func loadSigningKeys(production bool) (signingKeys, error) {
	privB64, pubB64 := os.Getenv("JWT_PRIVATE_KEY"), os.Getenv("JWT_PUBLIC_KEY")
	switch {
	case privB64 != "" && pubB64 != "":
		return decodeSigningKeys(privB64, pubB64)
	case privB64 != "" || pubB64 != "":
		return signingKeys{}, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY must be set together")
	case production:
		return signingKeys{}, errors.New("JWT_PRIVATE_KEY and JWT_PUBLIC_KEY are required in production")
	}

	slog.Warn("JWT keys not configured, generating an ephemeral pair")
	priv, pub, err := GenerateRSAKeyPair()
	if err != nil {
		return signingKeys{}, err
	}
	return signingKeys{private: priv, public: pub}, nil
}

func decodeSigningKeys(privB64, pubB64 string) (signingKeys, error) {
	privPEM, err := base64.StdEncoding.DecodeString(privB64)
	if err != nil {
		return signingKeys{}, fmt.Errorf("JWT_PRIVATE_KEY is not base64: %w", err)
	}
	pubPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		return signingKeys{}, fmt.Errorf("JWT_PUBLIC_KEY is not base64: %w", err)
	}

	// jwt accepts PKCS1 and PKCS8 private keys and PKIX or certificate public keys.
	priv, err := jwt.ParseRSAPrivateKeyFromPEM(privPEM)
	if err != nil {
		return signingKeys{}, fmt.Errorf("parsing JWT_PRIVATE_KEY: %w", err)
	}
	pub, err := jwt.ParseRSAPublicKeyFromPEM(pubPEM)
	if err != nil {
		return signingKeys{}, fmt.Errorf("parsing JWT_PUBLIC_KEY: %w", err)
	}
	if !priv.PublicKey.Equal(pub) {
		return signingKeys{}, errors.New("JWT_PUBLIC_KEY does not match JWT_PRIVATE_KEY")
	}
	return signingKeys{private: priv, public: pub}, nil
}

// GenerateRSAKeyPair creates a fresh signing pair.
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	priv, err := rsa.GenerateKey(rand.Reader, generatedKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("generating RSA key: %w", err)
	}
	return priv, &priv.PublicKey, nil
}
