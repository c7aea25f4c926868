//go:build windows

// Package privilege enables, on demand, the process privilege needed to open
// reparse points whose ACLs would otherwise deny access.
//
// Enabling a privilege changes the process token for the rest of the
// process's life. Nothing in this package disables a privilege again, so
// concurrent callers can race on [Ensure] safely.
package privilege

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/Microsoft/go-junction/internal/log"
	"github.com/Microsoft/go-junction/internal/logfields"
	"github.com/Microsoft/go-junction/internal/winapi"
)

var (
	mu      sync.Mutex
	enabled = make(map[string]struct{})

	// enable is swapped out in tests
	enable = winapi.EnablePrivilege
)

// Ensure enables the named privilege on the process token if a previous call
// has not already done so.
func Ensure(ctx context.Context, name string) error {
	mu.Lock()
	defer mu.Unlock()

	if _, ok := enabled[name]; ok {
		return nil
	}

	entry := log.G(ctx).WithFields(logrus.Fields{
		logfields.Privilege: name,
		logfields.Elevated:  winapi.IsElevated(),
	})
	if err := enable(name); err != nil {
		entry.WithError(err).Debug("could not enable process privilege")
		return err
	}
	enabled[name] = struct{}{}
	entry.Info("enabled process privilege")
	return nil
}
