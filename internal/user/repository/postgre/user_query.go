package postgre

import (
	"fmt"
	"strings"

	repo "personal-agenda/internal/user/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneUser.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email = $%d", idx))
		args = append(args, opt.Email)
		idx++
	}
	if opt.Phone != "" {
		conditions = append(conditions, fmt.Sprintf("phone = $%d", idx))
		args = append(args, opt.Phone)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}
