package cleaner

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Cleaner strips markup from extracted text using Bluemonday
type Cleaner struct {
	policy *bluemonday.Policy
}

// New creates a cleaner that strips ALL HTML
func New() *Cleaner {
	return &Cleaner{policy: bluemonday.StrictPolicy()}
}

// CleanToText removes any markup that survived text extraction and squeezes
// whitespace runs into single spaces.
func (c *Cleaner) CleanToText(s string) string {
	text := c.policy.Sanitize(s)
	return strings.Join(strings.Fields(text), " ")
}
