package annotate

import (
	"fmt"
	"time"

	"github.com/ahmetb/foodshare/internal/freshness"
	"github.com/ahmetb/foodshare/internal/timeutil"
	"gopkg.in/yaml.v3"
	"k8s.io/klog/v2"
)

// Options configures annotation behaviour.
type Options struct {
	Above bool      // true = HeadComment above field key, false = LineComment inline
	Now   time.Time // reference time for freshness and ages
}

// Annotate injects freshness comments into a board YAML tree. The root should
// be the board MappingNode (not a DocumentNode; the caller must unwrap it
// first).
//
// Every listing's expiresAt gets its remaining time ("1h 30m remaining",
// "Expired", or "claimed by X" once claimed). Every notification's timestamp
// gets its age ("3 hours ago").
//
// Targets are collected for the whole tree before any comment is written, so
// an invalid timestamp leaves the tree untouched. Returns the number of
// annotated fields.
func Annotate(root *yaml.Node, opts Options) (int, error) {
	if root == nil || root.Kind != yaml.MappingNode {
		return 0, fmt.Errorf("expected a mapping node at the root")
	}

	listings, err := walkSequence(root, "listings", "expiresAt", func(item *yaml.Node, at time.Time) string {
		return listingComment(item, at, opts.Now)
	})
	if err != nil {
		return 0, err
	}
	notifications, err := walkSequence(root, "notifications", "timestamp", func(_ *yaml.Node, at time.Time) string {
		return timeutil.FormatRelativeTime(at, opts.Now)
	})
	if err != nil {
		return 0, err
	}

	targets := append(listings, notifications...)
	for _, target := range targets {
		injectComment(target, opts.Above)
	}
	klog.V(2).InfoS("annotated board", "listings", len(listings), "notifications", len(notifications))
	return len(targets), nil
}

// listingComment describes a listing expiring at expiresAt as seen at now.
func listingComment(item *yaml.Node, expiresAt, now time.Time) string {
	if by := scalarField(item, "claimedBy"); by != "" {
		return fmt.Sprintf("claimed by %s", by)
	}
	return freshness.ComputeExpiry(expiresAt, now).Label()
}

// injectComment places the comment on the key (above mode) or next to the
// scalar value (inline mode).
func injectComment(target AnnotationTarget, above bool) {
	if above {
		target.KeyNode.HeadComment = target.Comment
		return
	}
	target.ValueNode.LineComment = target.Comment
}
