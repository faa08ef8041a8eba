package generate

import (
	"fmt"

	"github.com/justoffbyone/sitegen/internal/content"
	foundationerrors "github.com/justoffbyone/sitegen/internal/foundation/errors"
)

// Kind tags what a work item was built from.
type Kind string

const (
	KindPost   Kind = "post"
	KindStatic Kind = "static"
	KindAsset  Kind = "asset"
)

// Job describes one per-post image kind.
type Job struct {
	Name     string
	Template string
	// OutputBase is the file name written into the post directory, without
	// extension.
	OutputBase string
	// HasOutput reports whether the post already has this job's image.
	HasOutput func(content.Post) bool
	// Static jobs also produce images for configured static pages.
	Static bool
}

// OGJob writes og-image.<ext> next to each post and covers static pages.
var OGJob = Job{
	Name:       "og",
	Template:   "og",
	OutputBase: "og-image",
	HasOutput:  func(p content.Post) bool { return p.HasOgImage },
	Static:     true,
}

// HeroJob writes banner.<ext> next to each post.
var HeroJob = Job{
	Name:       "hero",
	Template:   "hero",
	OutputBase: "banner",
	HasOutput:  func(p content.Post) bool { return p.HasBanner },
}

// Jobs lists the per-post jobs in the order the watcher runs them.
func Jobs() []Job {
	return []Job{OGJob, HeroJob}
}

// LookupJob finds a per-post job by name.
func LookupJob(name string) (Job, error) {
	for _, j := range Jobs() {
		if j.Name == name {
			return j, nil
		}
	}
	return Job{}, foundationerrors.ValidationError(fmt.Sprintf("unknown job: %s", name)).
		WithContext("job", name).
		Build()
}
