package cli

import "github.com/spf13/pflag"

// addReviewContextFlags registers the review-context selection flags shared
// by the review and audio-review commands. Setting any of them populates
// both the review and audioReview config sections.
func addReviewContextFlags(f *pflag.FlagSet) {
	f.Bool("include-commit-history", false, "feed recent commit messages to the model")
	f.Bool("include-recent-diffs", false, "feed recent diffs to the model")
	f.Bool("include-release-notes", false, "feed recent release notes to the model")
	f.Bool("include-github-issues", false, "feed open GitHub issues to the model")
	f.Int("commit-history-limit", 0, "max commit-history entries")
	f.Int("diff-history-limit", 0, "max diffs")
	f.Int("release-notes-limit", 0, "max release-notes entries")
	f.Int("github-issues-limit", 0, "max issues")
}
