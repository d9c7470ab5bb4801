package nixgen

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ALH477/nixos-tui/internal/catalog"
)

func containsLine(lines []string, want string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) == want {
			return true
		}
	}
	return false
}

func TestGenerate_ReflectsHostname(t *testing.T) {
	vals := catalog.Defaults()
	lines := Generate(vals)
	if !containsLine(lines, `networking.hostName = "nixos";`) {
		t.Fatalf("default output missing hostname line:\n%s", strings.Join(lines, "\n"))
	}

	vals[catalog.FieldHostname] = catalog.Value{Str: "web01"}
	lines = Generate(vals)
	if !containsLine(lines, `networking.hostName = "web01";`) {
		t.Fatalf("output missing updated hostname line:\n%s", strings.Join(lines, "\n"))
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	vals := catalog.Defaults()
	first := Generate(vals)
	second := Generate(vals)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("Generate is not deterministic")
	}
}

func TestGenerate_OptionalBlocks(t *testing.T) {
	vals := catalog.Defaults()

	lines := Generate(vals)
	if containsLine(lines, "services.openssh.enable = true;") {
		t.Fatalf("ssh block present with ssh disabled")
	}
	if !containsLine(lines, "boot.loader.systemd-boot.enable = true;") {
		t.Fatalf("default boot loader missing")
	}

	vals[catalog.FieldSSH] = catalog.Value{Bool: true}
	vals[catalog.FieldSSHPort] = catalog.Value{Int: 2222}
	vals[catalog.FieldBootLoader] = catalog.Value{Str: "grub"}
	vals[catalog.FieldDesktop] = catalog.Value{Str: "gnome"}
	lines = Generate(vals)

	if !containsLine(lines, "services.openssh.enable = true;") {
		t.Fatalf("ssh block missing with ssh enabled")
	}
	if !containsLine(lines, "services.openssh.ports = [ 2222 ];") {
		t.Fatalf("custom ssh port missing")
	}
	if !containsLine(lines, "boot.loader.grub.enable = true;") {
		t.Fatalf("grub loader missing")
	}
	if !containsLine(lines, "services.xserver.desktopManager.gnome.enable = true;") {
		t.Fatalf("gnome desktop missing")
	}
}

func TestGenerate_NonDefaultShell(t *testing.T) {
	vals := catalog.Defaults()
	vals[catalog.FieldShell] = catalog.Value{Str: "zsh"}
	lines := Generate(vals)
	if !containsLine(lines, "shell = pkgs.zsh;") {
		t.Fatalf("zsh shell assignment missing")
	}
	if !containsLine(lines, "programs.zsh.enable = true;") {
		t.Fatalf("programs.zsh.enable missing")
	}
}

func TestGenerate_ClosesTopLevelAttrSet(t *testing.T) {
	lines := Generate(catalog.Defaults())
	if lines[len(lines)-1] != "}" {
		t.Fatalf("last line = %q, want closing brace", lines[len(lines)-1])
	}
}
