// Package main demonstrates usage of the release-errors packages.
package main

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/google/go-github/v68/github"

	"github.com/next-trace/release-errors/catalog"
	"github.com/next-trace/release-errors/error"
)

func main() {
	// Plain descriptor
	d, _ := catalog.Describe(catalog.InvalidAssets, catalog.Context{"assets": map[string]any{"glob": "dist/*"}})
	fmt.Println(d.Message)
	fmt.Println(d.Details)

	// Error value for a release run
	e := error.Get(catalog.MissingRepo, catalog.Context{"owner": "acme", "repo": "widgets"})
	fmt.Println(e.Error(), e.Key(), e.HTTPStatus())

	// Translate a failed go-github call
	u, _ := url.Parse("https://api.github.com/repos/acme/widgets")
	apiErr := &github.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusUnauthorized, Request: &http.Request{Method: http.MethodGet, URL: u}},
		Message:  "Bad credentials",
	}
	fmt.Println(error.FromGitHub(apiErr, "acme", "widgets").WithContextKV("step", "verifyConditions"))
}
