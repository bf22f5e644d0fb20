// Package encode produces the deterministic, non-secret fingerprints stamped
// on every record: the semantic glyph, the record identifier, the chrono
// marker, and the compact VSE encoding.
package encode

import (
	"crypto/sha256"

	"github.com/google/uuid"
)

// glyphAlphabet is the fixed symbol set glyphs are drawn from. The digest
// behind a glyph is chosen for its avalanche property only; nothing here is
// secret.
const glyphAlphabet = "◆◇●○▲△■□★☆✦✧⬢⬡◈⊕"

// glyphLength is how many leading digest bytes become symbols.
const glyphLength = 4

// Glyph derives the semantic glyph from a title. Same title, same glyph,
// always: each of the leading SHA-256 digest bytes is reduced modulo the
// alphabet size and mapped to its symbol.
func Glyph(title string) string {
	digest := sha256.Sum256([]byte(title))
	alphabet := []rune(glyphAlphabet)

	glyph := make([]rune, glyphLength)
	for i := 0; i < glyphLength; i++ {
		glyph[i] = alphabet[int(digest[i])%len(alphabet)]
	}
	return string(glyph)
}

// recordNamespace scopes name-based record UUIDs to this system.
var recordNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("esper-thesis/record"))

// RecordID derives the stable record identifier from title, category, and
// creation timestamp. Recomputing on the same inputs always yields the same
// value.
func RecordID(title, category, createdAt string) string {
	name := title + "|" + category + "|" + createdAt
	return uuid.NewSHA1(recordNamespace, []byte(name)).String()
}
