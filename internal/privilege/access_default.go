//go:build windows && !junction_backup

package privilege

import "github.com/Microsoft/go-junction/internal/winapi"

// ForAccess returns the privilege to enable after a reparse point open is
// denied.
//
// SeCreateSymbolicLinkPrivilege is enough to set mount point reparse data and is
// granted to unelevated users in developer mode. Build with the junction_backup
// tag to use backup and restore semantics instead.
func ForAccess(writable bool) string {
	return winapi.SeCreateSymbolicLinkPrivilege
}
