package injector

import "testing"

func TestDeviceGroupHasType(t *testing.T) {
	var g = DeviceGroup{Types: []DeviceType{DeviceKeyboard, DeviceGamepad}}

	if !g.HasType(DeviceKeyboard) {
		t.Errorf("HasType(keyboard) = false, want true")
	}

	if !g.HasType(DeviceGamepad) {
		t.Errorf("HasType(gamepad) = false, want true")
	}

	if g.HasType(DeviceMouse) {
		t.Errorf("HasType(mouse) = true, want false")
	}
}

func TestDeviceGroupValidate(t *testing.T) {
	var tests = []struct {
		name    string
		group   DeviceGroup
		wantErr bool
	}{
		{"valid", DeviceGroup{Key: "kbd", Paths: []string{"/dev/input/event0"}}, false},
		{"no key", DeviceGroup{Paths: []string{"/dev/input/event0"}}, true},
		{"no paths", DeviceGroup{Key: "kbd"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err = tt.group.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
