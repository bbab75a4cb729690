package validation

// EnvLinkDependency checks that a link is only set alongside keys and a
// description.
func EnvLinkDependency(hasEnv bool, description, link string) string {
	switch {
	case !hasEnv && link != "":
		return MsgEnvLinkNeedsEnv
	case hasEnv && description == "" && link != "":
		return MsgEnvLinkNeedsDesc
	default:
		return ""
	}
}

// EnvDescriptionDependency checks that a description is only set alongside
// keys.
func EnvDescriptionDependency(hasEnv bool, description string) string {
	if !hasEnv && description != "" {
		return MsgEnvDescriptionNeedsEnv
	}
	return ""
}

// DeveloperIDDependency checks that a developer id comes with a redirect URL.
func DeveloperIDDependency(redirectURL, developerID string) string {
	if redirectURL == "" && developerID != "" {
		return MsgDeveloperIDNeedsURL
	}
	return ""
}
