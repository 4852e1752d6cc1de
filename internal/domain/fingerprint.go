package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	m "synver.dev/pkg/synver/internal/model"
)

const absentBodyDigest = "-"

// FingerprintKey identifies a member across two artifact versions. Two
// members share a key only when they are the same declaration: same
// declaring type, same attribute flags and the same signature text.
func FingerprintKey(member m.Member) string {
	return fmt.Sprintf("%s %s %s", member.DeclaringType, member.Flags, member.Signature)
}

// FullSignature is the fingerprint key augmented with a digest of every body
// slot the member kind carries.
func FullSignature(member m.Member) string {
	var b strings.Builder

	b.WriteString(FingerprintKey(member))

	switch member.Kind {
	case m.KindMethod:
		fmt.Fprintf(&b, " body=%s", bodyDigest(member.Body))
	case m.KindProperty:
		fmt.Fprintf(&b, " get=%s set=%s", bodyDigest(member.Getter), bodyDigest(member.Setter))
	case m.KindField:
	}

	return b.String()
}

func bodyDigest(body m.Body) string {
	if !body.Present() {
		return absentBodyDigest
	}

	sum := sha256.Sum256(body.Code())

	return hex.EncodeToString(sum[:])
}
