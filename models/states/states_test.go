package states

import "testing"

func TestParseSettingsTab(t *testing.T) {
	tests := []struct {
		in      string
		want    SettingsTab
		wantErr bool
	}{
		{"", SettingsTab_Accounts, false},
		{"accounts", SettingsTab_Accounts, false},
		{"Addresses", SettingsTab_Addresses, false},
		{"nodes", SettingsTab_Nodes, false},
		{"general", SettingsTab_General, false},
		{"wallets", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseSettingsTab(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSettingsTab(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseSettingsTab(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSettingsTabRoundTrip(t *testing.T) {
	for _, tab := range SettingsTabs {
		got, err := ParseSettingsTab(tab.String())
		if err != nil {
			t.Fatalf("ParseSettingsTab(%q): %v", tab.String(), err)
		}
		if got != tab {
			t.Errorf("expected %v, got %v", tab, got)
		}
		if tab.Title() == "" {
			t.Errorf("tab %v has empty title", tab)
		}
	}
}

func TestSettingsTabNext(t *testing.T) {
	if got := SettingsTab_General.Next(1); got != SettingsTab_Accounts {
		t.Errorf("expected wrap to accounts, got %v", got)
	}
	if got := SettingsTab_Accounts.Next(-1); got != SettingsTab_General {
		t.Errorf("expected wrap to general, got %v", got)
	}
	if got := SettingsTab_Addresses.Next(1); got != SettingsTab_Nodes {
		t.Errorf("expected nodes after addresses, got %v", got)
	}
}

func TestLayoutDeviceClass(t *testing.T) {
	tests := []struct {
		layout     Layout
		width      int
		breakpoint int
		want       DeviceClass
	}{
		{Layout_Auto, 60, 80, DeviceClass_Mobile},
		{Layout_Auto, 80, 80, DeviceClass_Desktop},
		{Layout_Auto, 120, 0, DeviceClass_Desktop},
		{Layout_Auto, 0, 80, DeviceClass_Desktop},
		{Layout_Mobile, 200, 80, DeviceClass_Mobile},
		{Layout_Desktop, 20, 80, DeviceClass_Desktop},
	}
	for _, tt := range tests {
		if got := tt.layout.DeviceClass(tt.width, tt.breakpoint); got != tt.want {
			t.Errorf("%v.DeviceClass(%d, %d) = %v, want %v", tt.layout, tt.width, tt.breakpoint, got, tt.want)
		}
	}
}

func TestParseLayout(t *testing.T) {
	if _, err := ParseLayout("tablet"); err == nil {
		t.Errorf("expected error for unknown layout")
	}
	l, err := ParseLayout("Mobile")
	if err != nil || l != Layout_Mobile {
		t.Errorf("ParseLayout(Mobile) = %v, %v", l, err)
	}
}
