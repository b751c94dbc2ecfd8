//go:build windows

package win

import (
	"strings"
	"sync"
	"syscall"
	"unsafe"

	"github.com/uiasnap/uiasnap/internal/model"
	"github.com/uiasnap/uiasnap/internal/platform"
)

var (
	user32   = syscall.NewLazyDLL("user32.dll")
	kernel32 = syscall.NewLazyDLL("kernel32.dll")
	psapi    = syscall.NewLazyDLL("psapi.dll")

	procEnumWindows              = user32.NewProc("EnumWindows")
	procGetWindowTextW           = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW     = user32.NewProc("GetWindowTextLengthW")
	procGetWindowThreadProcessId = user32.NewProc("GetWindowThreadProcessId")
	procGetWindowRect            = user32.NewProc("GetWindowRect")
	procIsWindowVisible          = user32.NewProc("IsWindowVisible")
	procGetWindowLongW           = user32.NewProc("GetWindowLongW")
	procGetForegroundWindow      = user32.NewProc("GetForegroundWindow")
	procOpenProcess              = kernel32.NewProc("OpenProcess")
	procCloseHandle              = kernel32.NewProc("CloseHandle")
	procGetModuleBaseNameW       = psapi.NewProc("GetModuleBaseNameW")
)

const (
	gwlExStyle = ^uintptr(19) // -20

	wsExToolWindow uintptr = 0x00000080
	wsExAppWindow  uintptr = 0x00040000

	processQueryInformation = 0x0400
	processVMRead           = 0x0010
)

type rect struct {
	Left, Top, Right, Bottom int32
}

// The runtime never frees callback trampolines and caps them process-wide,
// so the EnumWindows callback is compiled once and reused. Per-enumeration
// state lives in enumState, guarded by enumMu.
var (
	enumMu       sync.Mutex
	enumCallback uintptr
	enumState    *enumContext
)

type enumContext struct {
	windows    []model.Window
	appFilter  string
	pid        int
	foreground uintptr
}

// Lister enumerates top-level windows via EnumWindows.
type Lister struct{}

// NewLister creates the Windows window lister.
func NewLister() *Lister {
	return &Lister{}
}

// ListWindows returns visible, titled, non-tool top-level windows, filtered
// per opts. The foreground window is marked focused.
func (l *Lister) ListWindows(opts platform.ListOptions) ([]model.Window, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	if enumCallback == 0 {
		enumCallback = syscall.NewCallback(enumWindowProc)
	}

	foreground, _, _ := procGetForegroundWindow.Call()
	enumState = &enumContext{
		windows:    make([]model.Window, 0, 64),
		appFilter:  strings.ToLower(opts.App),
		pid:        opts.PID,
		foreground: foreground,
	}
	defer func() { enumState = nil }()

	procEnumWindows.Call(enumCallback, 0)

	return enumState.windows, nil
}

func enumWindowProc(hwnd syscall.Handle, _ uintptr) uintptr {
	st := enumState

	if visible, _, _ := procIsWindowVisible.Call(uintptr(hwnd)); visible == 0 {
		return 1
	}

	// Skip tool windows that don't explicitly opt into the taskbar.
	exStyle, _, _ := procGetWindowLongW.Call(uintptr(hwnd), gwlExStyle)
	if exStyle&wsExToolWindow != 0 && exStyle&wsExAppWindow == 0 {
		return 1
	}

	length, _, _ := procGetWindowTextLengthW.Call(uintptr(hwnd))
	if length == 0 {
		return 1
	}
	buf := make([]uint16, length+1)
	procGetWindowTextW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&buf[0])), length+1)
	title := syscall.UTF16ToString(buf)
	if title == "" {
		return 1
	}

	var pid uint32
	procGetWindowThreadProcessId.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return 1
	}
	if st.pid != 0 && int(pid) != st.pid {
		return 1
	}

	app := processName(pid)
	if st.appFilter != "" && !strings.Contains(strings.ToLower(app), st.appFilter) {
		return 1
	}

	var r rect
	procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))

	st.windows = append(st.windows, model.Window{
		App:    app,
		PID:    int(pid),
		Title:  title,
		Handle: int64(hwnd),
		Bounds: [4]int{
			int(r.Left),
			int(r.Top),
			int(r.Right - r.Left),
			int(r.Bottom - r.Top),
		},
		Focused: uintptr(hwnd) == st.foreground,
	})
	return 1
}

// processName resolves a PID to its executable base name, without the .exe
// suffix. Returns "" when the process denies access.
func processName(pid uint32) string {
	handle, _, _ := procOpenProcess.Call(
		uintptr(processQueryInformation|processVMRead),
		0,
		uintptr(pid),
	)
	if handle == 0 {
		return ""
	}
	defer procCloseHandle.Call(handle)

	buf := make([]uint16, 260)
	ret, _, _ := procGetModuleBaseNameW.Call(
		handle,
		0,
		uintptr(unsafe.Pointer(&buf[0])),
		uintptr(len(buf)),
	)
	if ret == 0 {
		return ""
	}

	name := syscall.UTF16ToString(buf)
	if strings.HasSuffix(strings.ToLower(name), ".exe") {
		name = name[:len(name)-4]
	}
	return name
}
