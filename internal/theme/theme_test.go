package theme_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mgk2100/ppt-generator/internal/domain"
	"github.com/mgk2100/ppt-generator/internal/theme"
)

func TestDefaults_CompleteRoleSet(t *testing.T) {
	th := theme.Defaults()
	for _, role := range []string{"primary", "secondary", "accent", "highlight", "success", "warning", "danger", "light", "dark", "text", "white", "black"} {
		if !th.HasColor(role) {
			t.Errorf("missing color role %q", role)
		}
	}
	if len(th.Gradient) != 5 {
		t.Errorf("gradient has %d colors, want 5", len(th.Gradient))
	}
	if th.CardStyle != theme.DefaultCardStyle {
		t.Errorf("CardStyle = %q, want %q", th.CardStyle, theme.DefaultCardStyle)
	}
}

func TestApply_SingleColorKeepsRest(t *testing.T) {
	th := theme.Defaults()
	wantSecondary := th.Color("secondary")

	th.Apply(theme.Override{Colors: map[string]domain.Color{
		"primary": {R: 1, G: 2, B: 3},
	}})

	if got := th.Color("primary"); got != (domain.Color{R: 1, G: 2, B: 3}) {
		t.Errorf("primary = %+v after override", got)
	}
	if got := th.Color("secondary"); got != wantSecondary {
		t.Errorf("secondary changed to %+v, want untouched %+v", got, wantSecondary)
	}
}

func TestApply_FontPatchPartial(t *testing.T) {
	th := theme.Defaults()
	size := 30
	th.Apply(theme.Override{Fonts: map[string]theme.FontPatch{
		"title": {Size: &size},
	}})

	got := th.Font("title")
	if got.Size != 30 {
		t.Errorf("title size = %d, want 30", got.Size)
	}
	if got.Name != theme.FontTitle || !got.Bold {
		t.Errorf("title name/bold changed: %+v", got)
	}
}

func TestApply_InvalidCardStyleIgnored(t *testing.T) {
	th := theme.Defaults()
	th.Apply(theme.Override{CardStyle: "nonsense"})
	if th.CardStyle != theme.DefaultCardStyle {
		t.Errorf("CardStyle = %q, want unchanged", th.CardStyle)
	}
	th.Apply(theme.Override{CardStyle: "classic"})
	if th.CardStyle != "classic" {
		t.Errorf("CardStyle = %q, want classic", th.CardStyle)
	}
}

func TestResolve_PresetThenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "override.yaml")
	if err := os.WriteFile(path, []byte("colors:\n  accent: [9, 9, 9]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	th := theme.Resolve("dark", path, os.Stderr)
	if got := th.Color("primary"); got != (domain.Color{R: 33, G: 37, B: 41}) {
		t.Errorf("primary = %+v, want dark preset value", got)
	}
	if got := th.Color("accent"); got != (domain.Color{R: 9, G: 9, B: 9}) {
		t.Errorf("accent = %+v, want file override", got)
	}
}

func TestResolve_MissingFileFallsBack(t *testing.T) {
	th := theme.Resolve("", filepath.Join(t.TempDir(), "absent.yaml"), os.Stderr)
	defaults := theme.Defaults()
	if th.Color("primary") != defaults.Color("primary") {
		t.Error("missing override file must leave defaults intact")
	}
}

func TestResolve_UnknownPresetIgnored(t *testing.T) {
	th := theme.Resolve("no-such-preset", "", os.Stderr)
	defaults := theme.Defaults()
	if th.Color("primary") != defaults.Color("primary") {
		t.Error("unknown preset must leave defaults intact")
	}
}

func TestSave_RoundTripYAML(t *testing.T) {
	th := theme.Defaults()
	th.Apply(theme.Presets["green"])

	path := filepath.Join(t.TempDir(), "saved.yaml")
	if err := theme.Save(th, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	o, err := theme.LoadOverride(path)
	if err != nil {
		t.Fatalf("LoadOverride: %v", err)
	}
	if !reflect.DeepEqual(o.Colors["primary"], th.Color("primary")) {
		t.Errorf("reloaded primary = %+v, want %+v", o.Colors["primary"], th.Color("primary"))
	}
	if o.CardStyle != th.CardStyle {
		t.Errorf("reloaded card style = %q, want %q", o.CardStyle, th.CardStyle)
	}
}

func TestSave_JSONByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved.json")
	if err := theme.Save(theme.Defaults(), path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	o, err := theme.LoadOverride(path)
	if err != nil {
		t.Fatalf("LoadOverride: %v", err)
	}
	if o.Colors["primary"] != theme.Defaults().Color("primary") {
		t.Errorf("JSON round trip lost primary: %+v", o.Colors["primary"])
	}
}

func TestPresetNames_AllRegistered(t *testing.T) {
	for _, name := range theme.PresetNames() {
		if _, ok := theme.Presets[name]; !ok {
			t.Errorf("preset %q listed but not registered", name)
		}
	}
	if len(theme.PresetNames()) != len(theme.Presets) {
		t.Errorf("%d names for %d presets", len(theme.PresetNames()), len(theme.Presets))
	}
}

func TestGradientColor_Cycles(t *testing.T) {
	th := theme.Defaults()
	if th.GradientColor(0) != th.GradientColor(5) {
		t.Error("gradient index 5 should wrap to 0")
	}
}
