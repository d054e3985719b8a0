package utils

import (
	"encoding/hex"
	"fmt"
	"time"

	"aidanwoods.dev/go-paseto"
)

const (
	tokenAudience = "virtutask"
	tokenIssuer   = "virtutask-auth"
)

// PasetoMaker verarbeitet lokale PASETO-Operationen der Version 4 (symmetrisch).
type PasetoMaker struct {
	symmetricKey paseto.V4SymmetricKey
}

func NewPasetoMaker(keyHex string) (*PasetoMaker, error) {
	key, err := paseto.V4SymmetricKeyFromHex(keyHex)
	if err != nil {
		return nil, fmt.Errorf("Invalid symmetric key: %w", err)
	}

	return &PasetoMaker{
		symmetricKey: key,
	}, nil
}

// GenerateSymmetricKey generiert einen neuen symmetrischen V4-Schlüssel (hex).
func GenerateSymmetricKey() string {
	key := paseto.NewV4SymmetricKey()
	return hex.EncodeToString(key.ExportBytes())
}

type PayloadPaseto struct {
	EmployeeID string
	Username   string
	Email      string
	Role       string
	Expiration time.Time
}

// CreateToken erstellt ein lokales V4 Token (encrypted).
func (m *PasetoMaker) CreateToken(p PayloadPaseto, duration time.Duration) string {
	now := time.Now()
	token := paseto.NewToken()

	token.SetIssuedAt(now)
	token.SetNotBefore(now)
	token.SetExpiration(now.Add(duration))
	token.SetAudience(tokenAudience)
	token.SetIssuer(tokenIssuer)
	token.SetSubject(p.EmployeeID)

	token.SetString("username", p.Username)
	token.SetString("email", p.Email)
	token.SetString("role", p.Role)

	return token.V4Encrypt(m.symmetricKey, nil)
}

// VerifyToken entschlüsselt und prüft das lokale V4 Token.
func (m *PasetoMaker) VerifyToken(tokenString string) (*PayloadPaseto, error) {
	parser := paseto.NewParser()
	parser.AddRule(paseto.NotExpired())
	parser.AddRule(paseto.ForAudience(tokenAudience))
	parser.AddRule(paseto.ValidAt(time.Now()))

	parsedToken, err := parser.ParseV4Local(m.symmetricKey, tokenString, nil)
	if err != nil {
		return nil, fmt.Errorf("Token decryption/verification failed: %w", err)
	}

	subject, _ := parsedToken.GetSubject()
	username, _ := parsedToken.GetString("username")
	email, _ := parsedToken.GetString("email")
	role, _ := parsedToken.GetString("role")
	exp, _ := parsedToken.GetExpiration()

	return &PayloadPaseto{
		EmployeeID: subject,
		Username:   username,
		Email:      email,
		Role:       role,
		Expiration: exp,
	}, nil
}
