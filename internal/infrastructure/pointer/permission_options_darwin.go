//go:build darwin

package pointer

import (
	"unsafe"

	"github.com/ebitengine/purego"
)

const cfStringEncodingUTF8 = 0x08000100

// promptOptions builds {kAXTrustedCheckOptionPrompt: kCFBooleanTrue}.
func promptOptions() (uintptr, func()) {
	cf, err := purego.Dlopen(coreFoundationPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, func() {}
	}

	var (
		cfStringCreateWithCString func(alloc uintptr, cstr *byte, encoding uint32) uintptr
		cfDictionaryCreate        func(alloc uintptr, keys, values unsafe.Pointer, count int, keyCB, valueCB uintptr) uintptr
	)
	purego.RegisterLibFunc(&cfStringCreateWithCString, cf, "CFStringCreateWithCString")
	purego.RegisterLibFunc(&cfDictionaryCreate, cf, "CFDictionaryCreate")

	trueSym, err := purego.Dlsym(cf, "kCFBooleanTrue")
	if err != nil {
		return 0, func() {}
	}
	keyCallBacks, err := purego.Dlsym(cf, "kCFTypeDictionaryKeyCallBacks")
	if err != nil {
		return 0, func() {}
	}
	valueCallBacks, err := purego.Dlsym(cf, "kCFTypeDictionaryValueCallBacks")
	if err != nil {
		return 0, func() {}
	}

	name := append([]byte("AXTrustedCheckOptionPrompt"), 0)
	key := cfStringCreateWithCString(0, &name[0], cfStringEncodingUTF8)
	if key == 0 {
		return 0, func() {}
	}
	value := *(*uintptr)(unsafe.Pointer(trueSym))

	keys := [1]uintptr{key}
	values := [1]uintptr{value}
	dict := cfDictionaryCreate(0, unsafe.Pointer(&keys[0]), unsafe.Pointer(&values[0]), 1, keyCallBacks, valueCallBacks)
	if dict == 0 {
		cfRelease(key)
		return 0, func() {}
	}
	return dict, func() {
		cfRelease(dict)
		cfRelease(key)
	}
}
