//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import (
	"fmt"

	"github.com/okonech/jvmtigo/jvmsys"
)

// Version is a packed JVM TI version number: the interface type and the
// major, minor and micro components in a single value, matching the native
// jint encoding.
type Version uint32

// Published JVM TI versions.
const (
	Version1_0 Version = 0x30010000
	Version1_1 Version = 0x30010100
	Version1_2 Version = 0x30010200
	Version9   Version = 0x30090000
	Version11  Version = 0x300B0000
	Version19  Version = 0x30130000
	Version21  Version = 0x30150000

	// VersionLatest is the most recent version these bindings target.
	VersionLatest = Version21
)

// NewVersion packs major, minor and micro components into a Version.
func NewVersion(major uint16, minor, micro uint8) Version {
	v := jvmsys.VersionInterfaceJVMTI |
		uint32(major)<<jvmsys.VersionShiftMajor |
		uint32(minor)<<jvmsys.VersionShiftMinor |
		uint32(micro)<<jvmsys.VersionShiftMicro
	return Version(v)
}

// InterfaceType returns the interface-type bits of the version.
func (v Version) InterfaceType() uint32 {
	return uint32(v) & jvmsys.VersionMaskInterfaceType
}

// Major returns the major version number.
func (v Version) Major() uint16 {
	return uint16((uint32(v) & jvmsys.VersionMaskMajor) >> jvmsys.VersionShiftMajor)
}

// Minor returns the minor version number.
func (v Version) Minor() uint8 {
	return uint8((uint32(v) & jvmsys.VersionMaskMinor) >> jvmsys.VersionShiftMinor)
}

// Micro returns the micro version number.
func (v Version) Micro() uint8 {
	return uint8((uint32(v) & jvmsys.VersionMaskMicro) >> jvmsys.VersionShiftMicro)
}

// String renders the version as major.minor.micro.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major(), v.Minor(), v.Micro())
}
