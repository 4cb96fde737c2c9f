//go:build !windows

package adapter

import "syscall"

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
