//go:build windows

package util

import (
	"log/slog"
	"os"
	"slices"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32             = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow = kernel32.NewProc("GetConsoleWindow")
)

var cliProcesses = []string{
	"cmd.exe",
	"powershell.exe",
	"pwsh.exe",
	"wt.exe",
	"conhost.exe",
	"windowsterminal.exe",
}

// IsRunFromGUI reports whether the process was started from Explorer rather
// than a shell.
func IsRunFromGUI() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if hwnd == 0 {
		return true
	}

	parent := strings.ToLower(parentProcessName())
	slog.Debug("Parent process", "name", parent)
	if slices.Contains(cliProcesses, parent) {
		return false
	}
	return parent == "explorer.exe"
}

func parentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	find := func(match func(*windows.ProcessEntry32) bool) (windows.ProcessEntry32, bool) {
		var pe windows.ProcessEntry32
		pe.Size = uint32(unsafe.Sizeof(pe))
		for err := windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
			if match(&pe) {
				return pe, true
			}
		}
		return pe, false
	}

	self := uint32(os.Getpid())
	me, ok := find(func(pe *windows.ProcessEntry32) bool { return pe.ProcessID == self })
	if !ok || me.ParentProcessID == 0 {
		return ""
	}
	parent, ok := find(func(pe *windows.ProcessEntry32) bool { return pe.ProcessID == me.ParentProcessID })
	if !ok {
		return ""
	}
	return windows.UTF16ToString(parent.ExeFile[:])
}
