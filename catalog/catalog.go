package catalog

import "fmt"

// Context carries the fields a formatter interpolates. Reads on a nil
// Context are safe.
type Context map[string]any

// Value returns the raw value stored under key, or nil.
func (c Context) Value(key string) any { return c[key] }

// Text returns the value under key rendered as text, or "" when absent.
func (c Context) Text(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}

	return Stringify(v)
}

// Descriptor is the rendered form of a catalog entry.
type Descriptor struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// Formatter renders one kind of error. Formatters are pure and never panic.
type Formatter func(Context) Descriptor

const (
	gitRemotesURL    = "https://git-scm.com/book/en/v2/Git-Basics-Working-with-Remotes"
	githubAPIURL     = "https://developer.github.com/v3"
	enterpriseURL    = "https://enterprise.github.com"
	personalTokenURL = "https://help.github.com/articles/creating-a-personal-access-token-for-the-command-line"
	ownerAccessURL   = "https://help.github.com/articles/permission-levels-for-a-user-account-repository/#owner-access-on-a-repository-owned-by-a-user-account"
	collaboratorURL  = "https://help.github.com/articles/permission-levels-for-a-user-account-repository/#collaborator-access-on-a-repository-owned-by-a-user-account"
	teamAccessURL    = "https://help.github.com/articles/managing-team-access-to-an-organization-repository"
	orgLevelsURL     = "https://help.github.com/articles/repository-permission-levels-for-an-organization"

	repositoryURLOrigin = "By default the `repositoryUrl` option is retrieved from the `repository` property of your `package.json` or the [git origin url](" + gitRemotesURL + ") of the repository cloned by your CI environment."
)

var formatters = map[Kind]Formatter{
	InvalidAssets:         invalidAssets,
	InvalidSuccessComment: invalidSuccessComment,
	InvalidGitHubURL:      invalidGitHubURL,
	MissingRepo:           missingRepo,
	NoPushPermission:      noPushPermission,
	InvalidToken:          invalidToken,
	NoToken:               noToken,
}

// Lookup returns the formatter registered for kind.
func Lookup(kind Kind) (Formatter, bool) {
	f, ok := formatters[kind]
	return f, ok
}

// Describe renders kind with ctx. It reports false for kinds outside the catalog.
func Describe(kind Kind, ctx Context) (Descriptor, bool) {
	f, ok := Lookup(kind)
	if !ok {
		return Descriptor{}, false
	}

	return f(ctx), true
}

func invalidAssets(ctx Context) Descriptor {
	return Descriptor{
		Message: "Invalid `assets` option.",
		Details: fmt.Sprintf("The [assets option](%s) option must be an `Array` of `Strings` or `Objects` with a `path` property.\n\n"+
			"Your configuration for the `assets` option is `%s`.",
			Linkify("README.md#assets"), Stringify(ctx.Value("assets"))),
	}
}

func invalidSuccessComment(ctx Context) Descriptor {
	return Descriptor{
		Message: "Invalid `successComment` option.",
		Details: fmt.Sprintf("The [successComment option](%s) option, if defined, must be a non empty `String`.\n\n"+
			"Your configuration for the `successComment` option is `%s`.",
			Linkify("README.md#successcomment"), Stringify(ctx.Value("successComment"))),
	}
}

func invalidGitHubURL(Context) Descriptor {
	return Descriptor{
		Message: "The git repository URL is not a valid GitHub URL.",
		Details: "The **semantic-release** `repositoryUrl` option must be a valid GitHub URL with the format `<GitHub_or_GHE_URL>/<owner>/<repo>.git`.\n\n" +
			repositoryURLOrigin,
	}
}

func missingRepo(ctx Context) Descriptor {
	return Descriptor{
		Message: fmt.Sprintf("The repository %s/%s doesn't exist.", ctx.Text("owner"), ctx.Text("repo")),
		Details: fmt.Sprintf("The **semantic-release** `repositoryUrl` option must refer to your GitHub repository. "+
			"The repository must be accessible with the [GitHub API](%s).\n\n%s\n\n"+
			"If you are using [GitHub Enterprise](%s) please make sure to configure the `githubUrl` and `githubApiPathPrefix` [options](%s).",
			githubAPIURL, repositoryURLOrigin, enterpriseURL, Linkify("README.md#options")),
	}
}

func noPushPermission(ctx Context) Descriptor {
	slug := ctx.Text("owner") + "/" + ctx.Text("repo")

	return Descriptor{
		Message: fmt.Sprintf("The GitHub token doesn't allow to push on the repository %s.", slug),
		Details: fmt.Sprintf("The user associated with the [GitHub token](%s) configured in the `GH_TOKEN` or `GITHUB_TOKEN` environment variable "+
			"must allow to push to the repository %s.\n\n"+
			"Please make sure the GitHub user associated with the token is an [owner](%s) or a [collaborator](%s) "+
			"if the repository belongs to a user account or has [write permissions](%s) if the repository [belongs to an organization](%s).",
			Linkify("README.md#github-authentication"), slug, ownerAccessURL, collaboratorURL, teamAccessURL, orgLevelsURL),
	}
}

func invalidToken(ctx Context) Descriptor {
	return Descriptor{
		Message: "Invalid GitHub token.",
		Details: fmt.Sprintf("The [GitHub token](%s) configured in the `GH_TOKEN` or `GITHUB_TOKEN` environment variable "+
			"must be a valid [personal token](%s) allowing to push to the repository %s/%s.\n\n"+
			"Please make sure to set the `GH_TOKEN` or `GITHUB_TOKEN` environment variable in your CI with the exact value of the GitHub personal token.",
			Linkify("README.md#github-authentication"), personalTokenURL, ctx.Text("owner"), ctx.Text("repo")),
	}
}

func noToken(ctx Context) Descriptor {
	return Descriptor{
		Message: "No GitHub token specified.",
		Details: fmt.Sprintf("A [GitHub personal token](%s) must be created and set in the `GH_TOKEN` or `GITHUB_TOKEN` environment variable on your CI environment.\n\n"+
			"Please make sure to create a [GitHub personal token](%s) and to set it in the `GH_TOKEN` or `GITHUB_TOKEN` environment variable on your CI environment. "+
			"The token must allow to push to the repository %s/%s.",
			Linkify("README.md#github-authentication"), personalTokenURL, ctx.Text("owner"), ctx.Text("repo")),
	}
}
