package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies one entry of the catalog. Values are the plugin's stable
// error codes, so a Kind can be logged or compared as-is.
type Kind string

const (
	InvalidAssets         Kind = "EINVALIDASSETS"
	InvalidSuccessComment Kind = "EINVALIDSUCCESSCOMMENT"
	InvalidGitHubURL      Kind = "EINVALIDGITHUBURL"
	MissingRepo           Kind = "EMISSINGREPO"
	NoPushPermission      Kind = "EGHNOPERMISSION"
	InvalidToken          Kind = "EINVALIDGHTOKEN"
	NoToken               Kind = "ENOGHTOKEN"
)

// ErrUnknownKind is returned by ParseKind for codes outside the catalog.
var ErrUnknownKind = errors.New("unknown error kind")

var kinds = []Kind{
	InvalidAssets,
	InvalidSuccessComment,
	InvalidGitHubURL,
	MissingRepo,
	NoPushPermission,
	InvalidToken,
	NoToken,
}

// Kinds returns every kind in declaration order. The slice is a copy.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)

	return out
}

func (k Kind) String() string { return string(k) }

// ParseKind resolves a code such as "emissingrepo" to its Kind.
func ParseKind(s string) (Kind, error) {
	code := strings.ToUpper(strings.TrimSpace(s))
	for _, k := range kinds {
		if string(k) == code {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
