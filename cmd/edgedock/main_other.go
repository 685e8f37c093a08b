//go:build !unix

package main

import "runtime/debug"

func enableCrashForensics() {
	debug.SetTraceback("crash")
}
