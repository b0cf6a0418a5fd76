package iterm2

import (
	"os"
	"strings"
)

// Environment variables iTerm2 exports to scripts it launches.
const (
	EnvCookie = "ITERM2_COOKIE"
	EnvKey    = "ITERM2_KEY"
)

const (
	headerCookie = "x-iterm2-cookie"
	headerKey    = "x-iterm2-key"
)

// CredentialKind selects the handshake header a credential travels in.
type CredentialKind int

const (
	CredentialCookie CredentialKind = iota + 1
	CredentialKey
)

func (k CredentialKind) String() string {
	switch k {
	case CredentialCookie:
		return "cookie"
	case CredentialKey:
		return "key"
	default:
		return "unknown"
	}
}

// Credential is pre-supplied authorization material. It is read once and never refreshed.
type Credential struct {
	Kind  CredentialKind
	Value string
}

// Header returns the handshake header name and value for c.
func (c Credential) Header() (string, string) {
	if c.Kind == CredentialKey {
		return headerKey, c.Value
	}
	return headerCookie, c.Value
}

// CredentialFromEnv reads ITERM2_COOKIE and ITERM2_KEY from the process environment.
func CredentialFromEnv() (Credential, bool) {
	return CredentialFromLookup(os.LookupEnv)
}

// CredentialFromLookup resolves a credential through lookup; the cookie wins when both are set.
func CredentialFromLookup(lookup func(string) (string, bool)) (Credential, bool) {
	if v, ok := lookup(EnvCookie); ok && strings.TrimSpace(v) != "" {
		return Credential{Kind: CredentialCookie, Value: v}, true
	}
	if v, ok := lookup(EnvKey); ok && strings.TrimSpace(v) != "" {
		return Credential{Kind: CredentialKey, Value: v}, true
	}
	return Credential{}, false
}
