//go:build windows

package winapi

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/Microsoft/go-winio"
	"golang.org/x/sys/windows"
)

const (
	SeBackupPrivilege             = winio.SeBackupPrivilege
	SeRestorePrivilege            = winio.SeRestorePrivilege
	SeCreateSymbolicLinkPrivilege = "SeCreateSymbolicLinkPrivilege"
)

// BOOL AdjustTokenPrivileges(
//   [in]            HANDLE            TokenHandle,
//   [in]            BOOL              DisableAllPrivileges,
//   [in, optional]  PTOKEN_PRIVILEGES NewState,
//   [in]            DWORD             BufferLength,
//   [out, optional] PTOKEN_PRIVILEGES PreviousState,
//   [out, optional] PDWORD            ReturnLength
// );
//
// The last error is always returned: a successful call still sets
// ERROR_NOT_ALL_ASSIGNED when the token does not hold a privilege.
//
//sys adjustTokenPrivileges(token windows.Token, releaseAll bool, input *windows.Tokenprivileges, outputSize uint32, output *windows.Tokenprivileges, requiredSize *uint32) (success bool, err error) [true] = advapi32.AdjustTokenPrivileges

// PrivilegeError is returned when the process token does not hold a privilege
// it tried to enable.
type PrivilegeError struct {
	Privileges []string
}

func (e *PrivilegeError) Error() string {
	s := "privilege"
	if len(e.Privileges) > 1 {
		s += "s"
	}
	return fmt.Sprintf("could not enable %s %s: %s", s, strings.Join(e.Privileges, ", "), windows.ERROR_NOT_ALL_ASSIGNED)
}

func (e *PrivilegeError) Unwrap() error {
	return windows.ERROR_NOT_ALL_ASSIGNED
}

func LookupPrivilegeValue(p string) (l windows.LUID, err error) {
	err = windows.LookupPrivilegeValue(nil, windows.StringToUTF16Ptr(p), &l)
	return l, err
}

// EnablePrivilege enables the named privilege on the current process token.
//
// The change lasts for the lifetime of the process: nothing here ever disables
// the privilege again.
func EnablePrivilege(name string) error {
	var token windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_ADJUST_PRIVILEGES|windows.TOKEN_QUERY, &token); err != nil {
		return fmt.Errorf("open process token: %w", err)
	}
	defer token.Close()

	luid, err := LookupPrivilegeValue(name)
	if err != nil {
		return fmt.Errorf("could not lookup privilege %s: %w", name, err)
	}

	tp := windows.Tokenprivileges{
		PrivilegeCount: 1,
		Privileges: [1]windows.LUIDAndAttributes{{
			Luid:       luid,
			Attributes: windows.SE_PRIVILEGE_ENABLED,
		}},
	}
	ok, err := adjustTokenPrivileges(token, false, &tp, uint32(unsafe.Sizeof(tp)), nil, nil)
	if !ok {
		return fmt.Errorf("adjust token privileges: %w", err)
	}
	if errors.Is(err, windows.ERROR_NOT_ALL_ASSIGNED) {
		return &PrivilegeError{Privileges: []string{name}}
	}
	return nil
}
