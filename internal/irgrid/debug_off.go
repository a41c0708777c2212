//go:build !debug
// +build !debug

package irgrid

import "fmt"

func DebugLog(format string, args ...interface{}) {
	if Debug {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}

func DebugLogOnce(format string, args ...interface{}) {
	if Debug {
		fmt.Printf("[DEBUG] "+format+"\n", args...)
	}
}
