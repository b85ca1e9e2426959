package persona

import "testing"

func TestCatalog(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("catalog size = %d, want 5", len(all))
	}
	seen := make(map[string]bool)
	for _, p := range all {
		if p.ID == "" || p.Name == "" || p.SystemPrompt == "" {
			t.Errorf("persona %q has empty fields", p.ID)
		}
		if seen[p.ID] {
			t.Errorf("duplicate persona id %q", p.ID)
		}
		seen[p.ID] = true
	}
}

func TestGet(t *testing.T) {
	if _, ok := Get(BusinessAnalyst); !ok {
		t.Error("Get(BusinessAnalyst) not found")
	}
	if _, ok := Get("nonexistent"); ok {
		t.Error("Get(nonexistent) should not be found")
	}
}

func TestKeyPersonas(t *testing.T) {
	key := KeyPersonas()
	want := []string{SocraticMentor, BusinessAnalyst, TechnicalArchitect}
	if len(key) != len(want) {
		t.Fatalf("key personas = %d, want %d", len(key), len(want))
	}
	for i, p := range key {
		if p.ID != want[i] {
			t.Errorf("key persona[%d] = %q, want %q", i, p.ID, want[i])
		}
	}
}
