package main

// ControlFile names one of the fixed sysfs files the tool knows about.
type ControlFile int

const (
	BacklightFile ControlFile = iota
	PrimaryFanFile
	SecondaryFanFile
	PrimaryThermalFile
	SecondaryThermalFile
)

// The asus-nb-wmi driver ships with the kernel; faustus is the out-of-tree
// replacement for models the upstream driver does not cover.
var controlFilePaths = map[ControlFile]string{
	BacklightFile:        "/sys/class/leds/asus::kbd_backlight/brightness",
	PrimaryFanFile:       "/sys/devices/platform/asus-nb-wmi/fan_boost_mode",
	SecondaryFanFile:     "/sys/devices/platform/faustus/fan_boost_mode",
	PrimaryThermalFile:   "/sys/devices/platform/asus-nb-wmi/throttle_thermal_policy",
	SecondaryThermalFile: "/sys/devices/platform/faustus/throttle_thermal_policy",
}

func (f ControlFile) Path() string { return controlFilePaths[f] }

// candidates returns the files that may back op, in order of preference.
func candidates(op Operator) []ControlFile {
	switch op {
	case OpBacklight:
		return []ControlFile{BacklightFile}
	case OpFan:
		return []ControlFile{PrimaryFanFile, SecondaryFanFile}
	case OpThermal:
		return []ControlFile{PrimaryThermalFile, SecondaryThermalFile}
	}
	return nil
}
