package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"jobboard-api/internal/policy"
	"jobboard-api/internal/storage"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// mapRepoError maps storage errors to service errors
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	if errors.Is(err, storage.ErrInvalidReference) {
		return fmt.Errorf("%w: %s references a missing record", ErrInvalidArgument, operation)
	}
	// Errors that already carry a service sentinel pass through untouched.
	if isServiceError(err) {
		return err
	}
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

func isServiceError(err error) bool {
	for _, target := range []error{ErrNotFound, ErrUnauthorized, ErrConflict, ErrInvalidArgument, ErrInvalidCredentials, ErrInvalidToken} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// authorize runs the kind-level policy check and logs denials.
func authorize(actor policy.Actor, action policy.Action, resource policy.Resource, operation string) error {
	if policy.Can(actor, action, resource) {
		return nil
	}
	log.Printf("%s: denied %s on %s for actor %s (role=%q, authenticated=%t)",
		operation, action, resource, actor.ID, actor.Role, actor.Authenticated)
	return ErrUnauthorized
}

// authorizeAccess is authorize plus the ownership rule for one record.
func authorizeAccess(actor policy.Actor, action policy.Action, resource policy.Resource, ownerID uuid.UUID, operation string) error {
	if policy.CanAccess(actor, action, resource, ownerID) {
		return nil
	}
	log.Printf("%s: denied %s on %s owned by %s for actor %s", operation, action, resource, ownerID, actor.ID)
	return ErrUnauthorized
}

// Letters that survive accent folding as non-ASCII.
var slugLetters = map[rune]string{
	'ß': "ss", 'æ': "ae", 'œ': "oe", 'ø': "o", 'ł': "l", 'đ': "d", 'ð': "d", 'þ': "th",
}

// Symbols that distinguish names like "C++" and "C#" become words of their own.
var slugSymbols = map[rune]string{
	'+': "plus",
	'#': "sharp",
}

// Slugify lowercases s, folds accents, drops punctuation and joins words
// with single hyphens: "Café & Back-end Ops" -> "cafe-back-end-ops",
// "C++" -> "c-plus-plus".
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	pendingHyphen := false
	write := func(part string) {
		if pendingHyphen && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingHyphen = false
		b.WriteString(part)
	}
	for _, r := range strings.ToLower(folded) {
		if word, ok := slugSymbols[r]; ok {
			pendingHyphen = true
			write(word)
			pendingHyphen = true
			continue
		}
		if letters, ok := slugLetters[r]; ok {
			write(letters)
			continue
		}
		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'):
			write(string(r))
		case r == '-' || unicode.IsSpace(r):
			pendingHyphen = true
		}
	}
	return strings.Trim(b.String(), "-_")
}
