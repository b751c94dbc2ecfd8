//go:build windows

package uia

import (
	"errors"
	"log/slog"
	"syscall"

	ole "github.com/go-ole/go-ole"
)

var (
	kernel32               = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentThreadID = kernel32.NewProc("GetCurrentThreadId")
)

func currentThreadID() uint32 {
	id, _, _ := procGetCurrentThreadID.Call()
	return uint32(id)
}

const (
	hrSFalse          = 0x00000001
	hrRPCEChangedMode = 0x80010106
)

// comGuard registers the calling thread with COM's multithreaded apartment
// for the duration of a capture. owned reports whether this guard initialized
// the apartment and must balance with CoUninitialize.
//
// A guard is bound to the OS thread that created it. Callers must hold
// runtime.LockOSThread() for the guard's entire lifetime and release it on
// that same thread.
type comGuard struct {
	owned  bool
	thread uint32
}

// acquireCOMGuard initializes (or joins) the thread's MTA apartment.
//
// S_OK and S_FALSE both yield an owned guard: per CoInitializeEx docs,
// S_FALSE ("already initialized") still requires a balancing CoUninitialize.
// RPC_E_CHANGED_MODE means the thread already holds an STA; COM remains
// usable, but the guard must not uninitialize an apartment it did not create.
func acquireCOMGuard() (*comGuard, error) {
	g := &comGuard{thread: currentThreadID()}

	err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)
	if err == nil {
		g.owned = true
		return g, nil
	}

	var oleErr *ole.OleError
	if errors.As(err, &oleErr) {
		switch uint32(oleErr.Code()) {
		case hrSFalse:
			g.owned = true
			return g, nil
		case hrRPCEChangedMode:
			slog.Warn("thread already holds an STA apartment, using it instead of MTA",
				"thread", g.thread)
			return g, nil
		default:
			return nil, comErr("CoInitializeEx", oleErr.Code())
		}
	}
	return nil, &ComError{Op: "CoInitializeEx"}
}

// Release unregisters the thread from the apartment if this guard owns the
// registration. Releasing on a different thread would corrupt that thread's
// apartment state, so a mismatched release leaks instead.
func (g *comGuard) Release() {
	if tid := currentThreadID(); tid != g.thread {
		slog.Error("COM guard released on wrong thread, leaking apartment registration",
			"created", g.thread, "released", tid)
		return
	}
	if g.owned {
		ole.CoUninitialize()
		g.owned = false
	}
}
