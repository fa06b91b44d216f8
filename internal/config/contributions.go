package config

import (
	"os"
	"strings"
)

type ContributionsConfig struct {
	// AdminEmails may review the pending queue. Compared lowercased.
	AdminEmails []string
}

func NewContributionsConfig() *ContributionsConfig {
	var admins []string
	for _, e := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if e = strings.ToLower(strings.TrimSpace(e)); e != "" {
			admins = append(admins, e)
		}
	}
	return &ContributionsConfig{AdminEmails: admins}
}
