package lucca

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

const usersSuffix = "/api/v3/users"

// Former employees are the ones with a contract end date set. The value is
// Lucca's own filter-operator syntax and goes through verbatim.
const formerEmployeesFilter = "notequal,null"

// BuildEmployees returns current employees followed by former employees, with
// each record's nested department object flattened to its name.
//
// Lucca does not document whether the default users filter excludes ended
// contracts, so the two result sets may overlap; duplicates are kept.
func (c *Client) BuildEmployees(ctx context.Context, fields []string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("fields", strings.Join(fields, ","))
	current := c.Fetch(ctx, usersSuffix, params)

	params = url.Values{}
	params.Set("fields", strings.Join(fields, ","))
	params.Set("dtContractEnd", formerEmployeesFilter)
	former := c.Fetch(ctx, usersSuffix, params)

	employees := make([]map[string]any, 0, len(current)+len(former))
	employees = append(employees, current...)
	employees = append(employees, former...)

	// Flattening happens here and only here: after this loop every record
	// carries department as a plain name, never the nested object.
	for i, e := range employees {
		dept, ok := e["department"].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("lucca: employee %d: department is %T, want an object with a name", i, e["department"])
		}
		name, ok := dept["name"]
		if !ok {
			return nil, fmt.Errorf("lucca: employee %d: department object has no name", i)
		}
		e["department"] = name
	}

	return employees, nil
}
