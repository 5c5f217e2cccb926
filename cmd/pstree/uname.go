//go:build linux || darwin

package main

import "golang.org/x/sys/unix"

// kernelRelease is the running kernel's release string, or "" if unknown
func kernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Sysname[:]) + " " + unix.ByteSliceToString(uts.Release[:])
}
