package lucca

import (
	"context"
	"net/url"
	"strings"
)

const departmentsSuffix = "/api/v3/departments"

// BuildDepartments returns the departments list exactly as Lucca sends it.
// The hierarchy field stays in vendor shape; the CSV writer serializes it
// as-is.
func (c *Client) BuildDepartments(ctx context.Context, fields []string) []map[string]any {
	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))
	return c.Fetch(ctx, departmentsSuffix, params)
}
