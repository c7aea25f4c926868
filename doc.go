// Package junction creates, inspects and removes NTFS junction points, the
// directory reparse points tagged IO_REPARSE_TAG_MOUNT_POINT, and resolves the
// target a junction records.
//
// A junction is a plain directory carrying mount point reparse data. [Create]
// makes the directory and then writes the data, [Delete] removes only the data
// and leaves the empty directory in place.
//
// Opening a reparse point may require a process privilege that is disabled by
// default. When an open is denied the privilege is enabled for the whole
// process, permanently, and the open is retried once. Building with the
// junction_backup tag switches from SeCreateSymbolicLinkPrivilege to
// SeBackupPrivilege and SeRestorePrivilege.
//
// Every operation other than a successful call returns an [*Error] recording
// the operation and path. The Win32 code, when there is one, can be recovered
// with [Win32FromError] or matched with [errors.Is].
package junction
