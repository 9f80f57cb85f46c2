package builder

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Keeps the whole comment
const DefaultCommentPattern = `(?s).+`

// CommentFilter keeps only the parts of a worklog comment matching a
// fixed pattern.
type CommentFilter struct {
	re *regexp.Regexp
}

func NewCommentFilter(pattern string) (*CommentFilter, error) {
	if pattern == "" {
		pattern = DefaultCommentPattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid comment pattern: %w", err)
	}

	return &CommentFilter{re: re}, nil
}

func DefaultCommentFilter() *CommentFilter {
	return &CommentFilter{re: regexp.MustCompile(DefaultCommentPattern)}
}

// Filter concatenates all matches of the pattern, or returns "" when
// nothing matches.
func (f *CommentFilter) Filter(comment string) string {
	return strings.Join(f.re.FindAllString(comment, -1), "")
}

// Apply turns a raw worklog comment into its single line report form.
func (f *CommentFilter) Apply(comment string) string {
	filtered := f.Filter(strings.ReplaceAll(comment, "\r\n", " "))
	return strings.ReplaceAll(filtered, "\n", " ")
}

func quote(s string) string {
	return `"` + s + `"`
}

func formatHours(seconds int64) string {
	return strconv.FormatFloat(float64(seconds)/3600, 'f', -1, 64)
}
