package app

import (
	"github.com/xhd2015/go-dom-tui/dom"
	"github.com/xhd2015/walletui/models/states"
)

// lines taken by the status bar and help line
const FIXED_FRAME_HEIGHT = 3

// tab bar, spacing and panel title above a mobile panel's list
const MOBILE_CHROME_HEIGHT = 4

// SelectLayout renders exactly one layout for the device class.
func SelectLayout(state *State, deviceClass states.DeviceClass) *dom.Node {
	if deviceClass == states.DeviceClass_Mobile {
		return MobileTabs(state)
	}
	return DesktopStack(state)
}
