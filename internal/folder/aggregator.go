package folder

import (
	"sort"
	"time"

	"hrdocs/internal/model"
)

type group struct {
	rows     []model.DocumentRow
	prefixes map[string]struct{}
}

// BuildCompanyFolders aggregates raw rows into one folder per canonical
// company name. Prefixes that alias to the same display name merge into a
// single folder — this is the step that repairs historical prefix drift.
// Output is sorted by display name.
func BuildCompanyFolders(rows []model.DocumentRow, now time.Time) []model.Folder {
	groups := make(map[string]*group)
	for _, row := range rows {
		prefix := row.Prefix()
		if prefix == "" || IsExcludedPrefix(prefix) {
			continue
		}
		name := CanonicalCompany(prefix)
		g, ok := groups[name]
		if !ok {
			g = &group{prefixes: make(map[string]struct{})}
			groups[name] = g
		}
		g.rows = append(g.rows, row)
		g.prefixes[prefix] = struct{}{}
	}

	folders := make([]model.Folder, 0, len(groups))
	for name, g := range groups {
		folders = append(folders, model.Folder{
			ID:            "company-" + representativePrefix(g.prefixes),
			DisplayName:   name,
			Kind:          model.FolderKindCompany,
			CompanyName:   name,
			DocumentCount: len(g.rows),
			LastModified:  lastModified(g.rows, now),
			Path:          "/" + name,
		})
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].DisplayName < folders[j].DisplayName })
	return folders
}

// BuildEmployeeFolders aggregates one company's rows into per-employee
// folders. Rows without an employee ID are company-level documents and do
// not form employee folders. names supplies the relational employee names
// keyed by employee ID (priority-1 resolution input).
func BuildEmployeeFolders(companyName string, rows []model.DocumentRow, names map[string]string, now time.Time) []model.Folder {
	type empGroup struct {
		rows []model.DocumentRow
		ids  map[string]struct{}
	}
	groups := make(map[string]*empGroup)
	for _, row := range rows {
		if row.EmployeeID == "" {
			continue
		}
		name := ResolveDisplayName(row.EmployeeID, names[row.EmployeeID], employeeHint(row))
		g, ok := groups[name]
		if !ok {
			g = &empGroup{ids: make(map[string]struct{})}
			groups[name] = g
		}
		g.rows = append(g.rows, row)
		g.ids[row.EmployeeID] = struct{}{}
	}

	folders := make([]model.Folder, 0, len(groups))
	for name, g := range groups {
		id := firstSorted(g.ids)
		folders = append(folders, model.Folder{
			ID:            "employee-" + id,
			DisplayName:   name,
			Kind:          model.FolderKindEmployee,
			CompanyName:   companyName,
			EmployeeID:    id,
			DocumentCount: len(g.rows),
			LastModified:  lastModified(g.rows, now),
			Path:          companyName + "/" + id,
		})
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].DisplayName < folders[j].DisplayName })
	return folders
}

// FallbackFolders returns the static company list as empty folders. This is
// the error-recovery path used when the row fetch fails and no cached list
// exists; it never runs during normal aggregation.
func FallbackFolders(now time.Time) []model.Folder {
	folders := make([]model.Folder, 0, len(fallbackCompanies))
	for _, name := range fallbackCompanies {
		folders = append(folders, model.Folder{
			ID:           "company-" + name,
			DisplayName:  name,
			Kind:         model.FolderKindCompany,
			CompanyName:  name,
			LastModified: now,
			Path:         "/" + name,
		})
	}
	sort.Slice(folders, func(i, j int) bool { return folders[i].DisplayName < folders[j].DisplayName })
	return folders
}

// representativePrefix picks the folder id suffix deterministically: a
// designated canonical prefix when the merged group contains one, else the
// first prefix in sort order.
func representativePrefix(prefixes map[string]struct{}) string {
	for p := range prefixes {
		if _, ok := canonicalPrefixes[p]; ok {
			return p
		}
	}
	return firstSorted(prefixes)
}

func firstSorted(set map[string]struct{}) string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}

// lastModified is the max upload timestamp across the group. Unparsable
// (zero) timestamps are excluded from the max rather than failing the
// aggregation; a group with no valid timestamp gets now.
func lastModified(rows []model.DocumentRow, now time.Time) time.Time {
	var max time.Time
	for _, r := range rows {
		if r.UploadedAt.IsZero() {
			continue
		}
		if r.UploadedAt.After(max) {
			max = r.UploadedAt
		}
	}
	if max.IsZero() {
		return now
	}
	return max
}

// employeeHint derives a display-name hint from the storage key: the middle
// segment of company/<segment>/file when it differs from the employee ID.
func employeeHint(row model.DocumentRow) string {
	parts := splitKey(row.StorageKey)
	if len(parts) < 3 {
		return ""
	}
	if parts[1] == row.EmployeeID {
		return ""
	}
	return parts[1]
}

func splitKey(key string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(key); i++ {
		if key[i] == '/' {
			parts = append(parts, key[start:i])
			start = i + 1
		}
	}
	return append(parts, key[start:])
}
