// Package nixgen renders the current option values into configuration.nix
// text. Generate is a pure function: same values in, same lines out. The
// UI reads it only through the memoizing accessor in the catalog package.
package nixgen

import (
	"fmt"

	"github.com/ALH477/nixos-tui/internal/catalog"
)

// Generate returns the configuration.nix content as ordered lines,
// without trailing newlines.
func Generate(vals map[catalog.FieldID]catalog.Value) []string {
	var w writer

	w.line("# Generated by nixos-tui. Review before use.")
	w.line("{ config, pkgs, ... }:")
	w.line("")
	w.line("{")
	w.line("  imports = [ ./hardware-configuration.nix ];")
	w.line("")

	// Boot
	switch vals[catalog.FieldBootLoader].Str {
	case "grub":
		w.line("  boot.loader.grub.enable = true;")
		w.line("  boot.loader.grub.efiSupport = true;")
	default:
		w.line("  boot.loader.systemd-boot.enable = true;")
	}
	w.line("  boot.loader.efi.canTouchEfiVariables = true;")
	w.linef("  boot.loader.timeout = %d;", vals[catalog.FieldBootTimeout].Int)
	if vals[catalog.FieldQuietBoot].Bool {
		w.line(`  boot.kernelParams = [ "quiet" ];`)
		w.line("  boot.consoleLogLevel = 0;")
	}
	w.line("")

	// System
	w.linef("  networking.hostName = %q;", vals[catalog.FieldHostname].Str)
	w.linef("  time.timeZone = %q;", vals[catalog.FieldTimezone].Str)
	if vals[catalog.FieldAutoUpgrade].Bool {
		w.line("  system.autoUpgrade.enable = true;")
	}
	w.line("")

	// Networking
	if vals[catalog.FieldNetworkManager].Bool {
		w.line("  networking.networkmanager.enable = true;")
	}
	w.linef("  networking.firewall.enable = %v;", vals[catalog.FieldFirewall].Bool)
	if vals[catalog.FieldSSH].Bool {
		w.line("  services.openssh.enable = true;")
		if port := vals[catalog.FieldSSHPort].Int; port != 22 {
			w.linef("  services.openssh.ports = [ %d ];", port)
		}
	}
	w.line("")

	// Users
	user := vals[catalog.FieldUsername].Str
	w.linef("  users.users.%s = {", user)
	w.line("    isNormalUser = true;")
	if vals[catalog.FieldSudo].Bool {
		w.line(`    extraGroups = [ "wheel" "networkmanager" ];`)
	}
	if shell := vals[catalog.FieldShell].Str; shell != "bash" {
		w.linef("    shell = pkgs.%s;", shell)
	}
	w.line("  };")
	if shell := vals[catalog.FieldShell].Str; shell != "bash" {
		w.linef("  programs.%s.enable = true;", shell)
	}
	w.line("")

	// Desktop
	switch vals[catalog.FieldDesktop].Str {
	case "gnome":
		w.line("  services.xserver.enable = true;")
		w.line("  services.xserver.displayManager.gdm.enable = true;")
		w.line("  services.xserver.desktopManager.gnome.enable = true;")
	case "plasma":
		w.line("  services.displayManager.sddm.enable = true;")
		w.line("  services.desktopManager.plasma6.enable = true;")
	case "xfce":
		w.line("  services.xserver.enable = true;")
		w.line("  services.xserver.desktopManager.xfce.enable = true;")
	}
	if vals[catalog.FieldAudio].Bool {
		w.line("  services.pipewire.enable = true;")
		w.line("  services.pipewire.pulse.enable = true;")
	}
	if vals[catalog.FieldBluetooth].Bool {
		w.line("  hardware.bluetooth.enable = true;")
	}
	w.line("")

	// Nix
	if vals[catalog.FieldFlakes].Bool {
		w.line(`  nix.settings.experimental-features = [ "nix-command" "flakes" ];`)
	}
	if vals[catalog.FieldGC].Bool {
		w.line("  nix.gc.automatic = true;")
		w.line(`  nix.gc.dates = "weekly";`)
	}
	if vals[catalog.FieldUnfree].Bool {
		w.line("  nixpkgs.config.allowUnfree = true;")
	}
	w.line("")

	w.linef("  system.stateVersion = %q;", vals[catalog.FieldStateVersion].Str)
	w.line("}")

	return w.lines
}

type writer struct {
	lines []string
}

func (w *writer) line(s string) {
	w.lines = append(w.lines, s)
}

func (w *writer) linef(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}
