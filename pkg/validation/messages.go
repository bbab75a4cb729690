package validation

// Messages surfaced next to the originating input. The wording is part of the
// public contract: front-ends and API clients match on it.
const (
	MsgRepositoryURL          = "The Git Repository must be a valid URL."
	MsgRepositoryHost         = "The Git Repository must be a URL for a repository on GitHub, Bitbucket, or GitLab."
	MsgEnvLimit               = "There cannot be more than 100 Environment Variables per project."
	MsgEnvKeyLength           = "Environment Variable keys cannot be longer than 256 characters."
	MsgEnvKeyFormat           = `Environment Variable keys must start with a letter and use no special characters other than underscores ("_").`
	MsgEnvDescriptionLength   = "The Environment Variables description must be 256 characters or less."
	MsgEnvLinkURL             = "Environment Variable external link must be a valid URL."
	MsgEnvLinkNeedsEnv        = "An Environment Variable Link needs Required Environment Variables."
	MsgEnvLinkNeedsDesc       = "An Environment Variable Link requires an Environment Variables Description."
	MsgEnvDescriptionNeedsEnv = "An Environment Variable Link needs Required Environment Variables."
	MsgProjectNameLength      = "A Project name cannot be longer than 100 characters"
	MsgProjectNameFormat      = `Project names must be lowercase, start and end with a letter, and cannot contain special characters other than a hyphen ("-").`
	MsgRepoNameLength         = "A Git repository name cannot be longer than 100 characters"
	MsgRepoNameFormat         = `Git repository names cannot include special characters other than a hyphen ("-"), underscore ("_"), or full-stop (".").`
	MsgRedirectURL            = "Redirect URL must be a valid URL."
	MsgDeveloperIDNeedsURL    = "A Developer ID requires an Redirect URL."
)

// Limits enforced by the field validators and the env list manager.
const (
	MaxEnvVars          = 100
	MaxEnvKeyLength     = 256
	MaxDescriptionChars = 256
	MaxNameLength       = 100
)
