package platform

import (
	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
)

// DeviceID retrieves the stable identity of this machine, used as the
// MQTT client id suffix and the rig's reported serial number.
func DeviceID() string {
	id, err := machineid.ID()
	if err != nil {
		panic(err)
	}
	return id
}

// LED is the status indicator toggled once per harness pass, standing in
// for the board's red LED.
type LED struct {
	on bool
}

// Toggle flips the indicator.
func (l *LED) Toggle() {
	l.on = !l.on
	glog.V(2).Infof("status led: %v", l.on)
}

// On reports the indicator state.
func (l *LED) On() bool {
	return l.on
}
