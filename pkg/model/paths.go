package model

import (
	"fmt"
	"regexp"
	"strconv"
)

// Commit-scoped storage layout:
//
//	commits/{id}.json      snapshot manifest, presence marks the commit durable
//	commits/{id}/{name}    frozen content for one entry
const (
	commitsPrefix  = "commits/"
	manifestSuffix = ".json"
)

var isCommitManifestRe = regexp.MustCompile(`^` + commitsPrefix + `(\d+)\` + manifestSuffix + `$`)

// CommitsPrefix returns the key prefix holding all commit-scoped storage.
func CommitsPrefix() string {
	return commitsPrefix
}

// CommitManifestKey yields the key of the manifest for a commit ID.
func CommitManifestKey(id uint64) string {
	return fmt.Sprintf("%s%d%s", commitsPrefix, id, manifestSuffix)
}

// CommitEntryKey yields the key of one frozen entry within a commit.
func CommitEntryKey(id uint64, name string) string {
	return fmt.Sprintf("%s%d/%s", commitsPrefix, id, name)
}

// CommitScope yields the key prefix of a single commit's frozen entries.
func CommitScope(id uint64) string {
	return fmt.Sprintf("%s%d/", commitsPrefix, id)
}

// ParseCommitManifestKey recognizes manifest keys and extracts the
// commit ID. Any other key yields ok == false.
func ParseCommitManifestKey(key string) (uint64, bool) {
	m := isCommitManifestRe.FindStringSubmatch(key)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}
