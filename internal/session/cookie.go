package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

const CookieName = "midland_session"

var ErrBadCookie = errors.New("malformed or tampered session cookie")

// Codec signs and verifies session ids so a client cannot forge another
// browser's session by editing the cookie. The secret comes from
// configuration, never from source.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) Codec {
	return Codec{secret: []byte(secret)}
}

// Encode returns "<id>.<signature>".
func (c Codec) Encode(id string) string {
	return id + "." + c.sign(id)
}

// Decode verifies the signature and returns the bare session id.
func (c Codec) Decode(value string) (string, error) {
	id, sig, ok := strings.Cut(value, ".")
	if !ok || id == "" {
		return "", ErrBadCookie
	}
	if !hmac.Equal([]byte(sig), []byte(c.sign(id))) {
		return "", ErrBadCookie
	}
	return id, nil
}

func (c Codec) sign(id string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(id))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
