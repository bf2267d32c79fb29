package domain

import "testing"

func TestThemeToggle(t *testing.T) {
	if got := ThemeLight.Toggle(); got != ThemeDark {
		t.Errorf("ThemeLight.Toggle() = %s, want dark", got)
	}
	if got := ThemeDark.Toggle(); got != ThemeLight {
		t.Errorf("ThemeDark.Toggle() = %s, want light", got)
	}
	// Toggling twice gets back where it started
	if got := ThemeDark.Toggle().Toggle(); got != ThemeDark {
		t.Errorf("double toggle = %s, want dark", got)
	}
}

func TestThemeValid(t *testing.T) {
	for _, theme := range []Theme{ThemeLight, ThemeDark} {
		if !theme.Valid() {
			t.Errorf("Theme(%q).Valid() = false, want true", theme)
		}
	}
	if Theme("neon").Valid() {
		t.Error(`Theme("neon").Valid() = true, want false`)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("Category(%q).Valid() = false, want true", c)
		}
	}
	if Category("gadgets").Valid() {
		t.Error(`Category("gadgets").Valid() = true, want false`)
	}
}

func TestOrderStatusValid(t *testing.T) {
	valid := []OrderStatus{
		OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled,
	}
	for _, s := range valid {
		if !s.Valid() {
			t.Errorf("OrderStatus(%q).Valid() = false, want true", s)
		}
	}
	if OrderStatus("returned").Valid() {
		t.Error(`OrderStatus("returned").Valid() = true, want false`)
	}
}
