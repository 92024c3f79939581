//go:build windows

package player

import (
	"errors"
	"os"
	"os/exec"
	"syscall"
)

// createNoWindow keeps mpv from opening a console next to its video window.
const createNoWindow = 0x08000000

func sysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: createNoWindow}
}

// killProcess ends mpv. There is no process group to signal, so children started by mpv are left alone.
func killProcess(cmd *exec.Cmd) error {
	if cmd == nil || cmd.Process == nil {
		return nil
	}
	if err := cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
