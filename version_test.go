//go:build !ios && !android && (amd64 || arm64)

package jvmtigo

import (
	"testing"

	"github.com/okonech/jvmtigo/jvmsys"
)

func TestVersionComponents(t *testing.T) {
	tests := []struct {
		v     Version
		major uint16
		minor uint8
		micro uint8
		str   string
	}{
		{Version1_0, 1, 0, 0, "1.0.0"},
		{Version1_2, 1, 2, 0, "1.2.0"},
		{Version11, 11, 0, 0, "11.0.0"},
		{Version21, 21, 0, 0, "21.0.0"},
	}
	for _, tt := range tests {
		if got := tt.v.Major(); got != tt.major {
			t.Errorf("%#x Major() = %d, want %d", uint32(tt.v), got, tt.major)
		}
		if got := tt.v.Minor(); got != tt.minor {
			t.Errorf("%#x Minor() = %d, want %d", uint32(tt.v), got, tt.minor)
		}
		if got := tt.v.Micro(); got != tt.micro {
			t.Errorf("%#x Micro() = %d, want %d", uint32(tt.v), got, tt.micro)
		}
		if got := tt.v.String(); got != tt.str {
			t.Errorf("%#x String() = %q, want %q", uint32(tt.v), got, tt.str)
		}
		if got := tt.v.InterfaceType(); got != jvmsys.VersionInterfaceJVMTI {
			t.Errorf("%#x InterfaceType() = %#x, want %#x", uint32(tt.v), got, jvmsys.VersionInterfaceJVMTI)
		}
	}
}

func TestNewVersionRoundTrip(t *testing.T) {
	v := NewVersion(21, 3, 7)
	if v.Major() != 21 || v.Minor() != 3 || v.Micro() != 7 {
		t.Fatalf("NewVersion(21,3,7) = %s", v)
	}
	if NewVersion(1, 2, 0) != Version1_2 {
		t.Fatalf("NewVersion(1,2,0) = %#x, want %#x", uint32(NewVersion(1, 2, 0)), uint32(Version1_2))
	}
}
