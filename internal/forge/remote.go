package forge

import (
	"os/exec"
	"strings"
)

// RepoSlug returns "owner/repo" parsed from the origin remote URL, or ""
// if origin is not configured or not a recognizable forge URL.
func RepoSlug(workDir string) string {
	cmd := exec.Command("git", "remote", "get-url", "origin")
	cmd.Dir = workDir
	output, err := cmd.Output()
	if err != nil {
		return ""
	}
	return parseSlug(strings.TrimSpace(string(output)))
}

func parseSlug(remoteURL string) string {
	if strings.HasPrefix(remoteURL, "git@") {
		idx := strings.Index(remoteURL, ":")
		if idx < 0 {
			return ""
		}
		path := remoteURL[idx+1:]
		return trimSlug(path)
	}

	if idx := strings.Index(remoteURL, "://"); idx >= 0 {
		rest := remoteURL[idx+3:]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			return trimSlug(rest[slash+1:])
		}
	}

	return ""
}

func trimSlug(path string) string {
	path = strings.TrimSuffix(path, ".git")
	parts := strings.SplitN(path, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ""
	}
	return parts[0] + "/" + parts[1]
}
