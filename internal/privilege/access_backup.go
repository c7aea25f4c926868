//go:build windows && junction_backup

package privilege

import "github.com/Microsoft/go-junction/internal/winapi"

// ForAccess returns the privilege to enable after a reparse point open is
// denied: SeRestorePrivilege for writable opens and SeBackupPrivilege for
// read-only ones. Both bypass the directory's ACL checks entirely.
func ForAccess(writable bool) string {
	if writable {
		return winapi.SeRestorePrivilege
	}
	return winapi.SeBackupPrivilege
}
