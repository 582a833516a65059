package error

import (
	"errors"
	"net/http"

	"github.com/google/go-github/v68/github"

	"github.com/next-trace/release-errors/catalog"
)

// FromGitHub translates the error of a failed GitHub API call on owner/repo
// into the catalog entry a user can act on. The original error is kept as the
// cause. Statuses the catalog has no entry for go through Ensure.
func FromGitHub(err error, owner, repo string) *Error {
	if err == nil {
		return nil
	}

	var existing *Error
	if errors.As(err, &existing) {
		return existing
	}

	var resp *github.ErrorResponse
	if !errors.As(err, &resp) || resp.Response == nil {
		return Ensure(err)
	}

	ctx := catalog.Context{"owner": owner, "repo": repo}

	switch resp.Response.StatusCode {
	case http.StatusUnauthorized:
		return Wrap(err, catalog.InvalidToken, ctx)
	case http.StatusForbidden:
		return Wrap(err, catalog.NoPushPermission, ctx)
	case http.StatusNotFound:
		return Wrap(err, catalog.MissingRepo, ctx)
	default:
		e := Ensure(err)
		e.httpStatus = resp.Response.StatusCode

		return e.WithContextMap(ctx)
	}
}
