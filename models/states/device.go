package states

import (
	"fmt"
	"strings"
)

type DeviceClass int

const (
	DeviceClass_Desktop DeviceClass = iota
	DeviceClass_Mobile
)

func (c DeviceClass) String() string {
	if c == DeviceClass_Mobile {
		return "mobile"
	}
	return "desktop"
}

const DefaultMobileBreakpoint = 80

// Layout is the configured layout preference.
type Layout int

const (
	Layout_Auto Layout = iota
	Layout_Mobile
	Layout_Desktop
)

func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Layout_Auto, nil
	case "mobile":
		return Layout_Mobile, nil
	case "desktop":
		return Layout_Desktop, nil
	}
	return 0, fmt.Errorf("unknown layout %q, available: auto, mobile, desktop", s)
}

func (l Layout) String() string {
	switch l {
	case Layout_Mobile:
		return "mobile"
	case Layout_Desktop:
		return "desktop"
	}
	return "auto"
}

// DeviceClass resolves the layout for a terminal of the given width.
// Terminals narrower than breakpoint are treated as mobile.
func (l Layout) DeviceClass(width int, breakpoint int) DeviceClass {
	switch l {
	case Layout_Mobile:
		return DeviceClass_Mobile
	case Layout_Desktop:
		return DeviceClass_Desktop
	}
	if breakpoint <= 0 {
		breakpoint = DefaultMobileBreakpoint
	}
	if width > 0 && width < breakpoint {
		return DeviceClass_Mobile
	}
	return DeviceClass_Desktop
}
