package board

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// DefaultExpiry is the pickup window preselected for new posts.
const DefaultExpiry = 2 * time.Hour

// MaxExpiryHours is the largest whole-hour expiry a post can choose.
const MaxExpiryHours = 23

// ExpiryMinuteSteps are the minute values a post can add on top of the hours.
var ExpiryMinuteSteps = []int{0, 15, 30, 45}

// Draft is a listing about to be posted.
type Draft struct {
	Title         string
	Description   string
	Quantity      string
	Location      string
	ImageURL      string
	PostedBy      string
	ExpiryHours   int
	ExpiryMinutes int
}

// Expiry is the pickup window the draft asks for.
func (d Draft) Expiry() time.Duration {
	return time.Duration(d.ExpiryHours)*time.Hour + time.Duration(d.ExpiryMinutes)*time.Minute
}

// Validate returns an aggregate of every problem with the draft, or nil.
func (d Draft) Validate() error {
	var errs field.ErrorList

	required := []struct {
		name, value string
	}{
		{"title", d.Title},
		{"description", d.Description},
		{"quantity", d.Quantity},
		{"location", d.Location},
		{"postedBy", d.PostedBy},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			errs = append(errs, field.Required(field.NewPath(r.name), ""))
		}
	}

	if d.ExpiryHours < 0 || d.ExpiryHours > MaxExpiryHours {
		errs = append(errs, field.Invalid(field.NewPath("expiryHours"), d.ExpiryHours,
			fmt.Sprintf("must be between 0 and %d", MaxExpiryHours)))
	}
	if !slices.Contains(ExpiryMinuteSteps, d.ExpiryMinutes) {
		errs = append(errs, field.Invalid(field.NewPath("expiryMinutes"), d.ExpiryMinutes,
			fmt.Sprintf("must be one of %v", ExpiryMinuteSteps)))
	}
	if d.Expiry() <= 0 {
		errs = append(errs, field.Invalid(field.NewPath("expiry"), d.Expiry().String(),
			"must be greater than zero"))
	}

	return errs.ToAggregate()
}
