//go:build linux

// Package uinput implements the userspace api [uinput.h] in the Linux
// kernel: creating virtual input devices that the rest of the system
// sees exactly like a physical one.
//
// It follows the same ioctl-request-code idiom as
// [github.com/inputcore/remapper/linux/input], built on
// [github.com/inputcore/remapper/linux/ioctl].
//
// [uinput.h]: https://github.com/torvalds/linux/blob/master/include/uapi/linux/uinput.h
package uinput
