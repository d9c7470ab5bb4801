// Package tutorial holds the built-in tutorial catalog: short, step-by-step
// walkthroughs of NixOS concepts shown inside the TUI. The catalog is
// static and read-only; completion tracking lives in the UI model.
package tutorial

// Step is one page of a tutorial.
type Step struct {
	Title string
	Body  string
	Code  string // optional code sample
	Tip   string // optional callout
}

// Tutorial is an ordered sequence of steps.
type Tutorial struct {
	ID      string
	Title   string
	Summary string
	Steps   []Step
}

// All returns the tutorial catalog in display order. The returned slice is
// shared; callers must treat it as read-only.
func All() []Tutorial {
	return tutorials
}

var tutorials = []Tutorial{
	{
		ID:      "first-rebuild",
		Title:   "Your first rebuild",
		Summary: "Apply a configuration change with nixos-rebuild.",
		Steps: []Step{
			{
				Title: "Edit the configuration",
				Body:  "NixOS is configured from a single declarative file. Open /etc/nixos/configuration.nix in your editor and make a change, for example adding a package to environment.systemPackages.",
				Code:  "environment.systemPackages = with pkgs; [ htop ];",
			},
			{
				Title: "Test the change",
				Body:  "Build and activate the new configuration without making it the boot default. If anything goes wrong, a reboot returns you to the previous system.",
				Code:  "sudo nixos-rebuild test",
				Tip:   "Use `nixos-rebuild build` to only build, without activating anything.",
			},
			{
				Title: "Make it stick",
				Body:  "Once you are happy, switch to the new configuration and add it to the boot menu.",
				Code:  "sudo nixos-rebuild switch",
			},
		},
	},
	{
		ID:      "generations",
		Title:   "Generations and rollback",
		Summary: "Every rebuild is reversible.",
		Steps: []Step{
			{
				Title: "List generations",
				Body:  "Each successful rebuild creates a new system generation. All of them stay bootable until garbage collected.",
				Code:  "sudo nix-env --list-generations --profile /nix/var/nix/profiles/system",
			},
			{
				Title: "Roll back",
				Body:  "If the current generation misbehaves, switch back to the previous one. The boot menu offers the same choice at startup.",
				Code:  "sudo nixos-rebuild switch --rollback",
				Tip:   "Rollback only changes the active generation; it never deletes anything.",
			},
			{
				Title: "Clean up",
				Body:  "Old generations consume disk space. Delete the ones you no longer need, then collect garbage.",
				Code:  "sudo nix-collect-garbage --delete-older-than 14d",
			},
		},
	},
	{
		ID:      "flakes-intro",
		Title:   "Introduction to flakes",
		Summary: "Pin inputs and make builds reproducible.",
		Steps: []Step{
			{
				Title: "What flakes add",
				Body:  "A flake pins every input (nixpkgs, overlays, other repos) in a lock file, so the same flake builds the same system everywhere.",
			},
			{
				Title: "Enable the feature",
				Body:  "Flakes are still gated behind an experimental flag. The Nix section of this app can enable it declaratively.",
				Code:  "nix.settings.experimental-features = [ \"nix-command\" \"flakes\" ];",
			},
			{
				Title: "A minimal system flake",
				Body:  "The flake's nixosConfigurations output wires your configuration.nix into a named system.",
				Code:  "outputs = { nixpkgs, ... }: {\n  nixosConfigurations.myhost = nixpkgs.lib.nixosSystem {\n    modules = [ ./configuration.nix ];\n  };\n}",
				Tip:   "Rebuild with `nixos-rebuild switch --flake .#myhost`.",
			},
			{
				Title: "Update inputs",
				Body:  "Updating is explicit: refresh the lock file, then rebuild. Nothing changes behind your back.",
				Code:  "nix flake update",
			},
		},
	},
}
