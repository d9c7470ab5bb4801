package catalog

// FieldID uniquely identifies a configuration field across the catalog.
type FieldID string

// Field identifiers. The catalog below is the single source of truth for
// defaults; these constants exist so callers never spell IDs inline.
const (
	FieldHostname       FieldID = "system.hostname"
	FieldTimezone       FieldID = "system.timezone"
	FieldAutoUpgrade    FieldID = "system.auto_upgrade"
	FieldStateVersion   FieldID = "system.state_version"
	FieldBootLoader     FieldID = "boot.loader"
	FieldQuietBoot      FieldID = "boot.quiet"
	FieldBootTimeout    FieldID = "boot.timeout"
	FieldNetworkManager FieldID = "networking.networkmanager"
	FieldFirewall       FieldID = "networking.firewall"
	FieldSSH            FieldID = "networking.ssh"
	FieldSSHPort        FieldID = "networking.ssh_port"
	FieldUsername       FieldID = "users.name"
	FieldShell          FieldID = "users.shell"
	FieldSudo           FieldID = "users.sudo"
	FieldDesktop        FieldID = "desktop.environment"
	FieldAudio          FieldID = "desktop.audio"
	FieldBluetooth      FieldID = "desktop.bluetooth"
	FieldFlakes         FieldID = "nix.flakes"
	FieldGC             FieldID = "nix.gc"
	FieldUnfree         FieldID = "nix.unfree"
)

// FieldType describes how a field's value is edited and rendered.
type FieldType int

const (
	TypeBool FieldType = iota
	TypeString
	TypeChoice
	TypeInt
)

// ValidateKind selects the rule applied when a string edit is committed.
type ValidateKind int

const (
	ValidateNone ValidateKind = iota
	ValidateHostname
	ValidateUsername
)

// Value holds one field's setting. Exactly one member is meaningful,
// selected by the owning field's Type; Choice values live in Str. Values
// are comparable with ==, which is what the modified indicator relies on.
type Value struct {
	Bool bool
	Str  string
	Int  int
}

// Field describes one configurable option.
type Field struct {
	ID          FieldID
	Label       string
	Description string
	Type        FieldType
	Default     Value
	Choices     []string     // TypeChoice only
	Min, Max    int          // TypeInt only
	Validate    ValidateKind // TypeString only
}

// Section groups related fields under a navigation heading.
type Section struct {
	ID     string
	Title  string
	Fields []Field
}

// Sections returns the full option catalog in display order. The returned
// slice is shared; callers must treat it as read-only.
func Sections() []Section {
	return sections
}

var sections = []Section{
	{
		ID:    "system",
		Title: "System",
		Fields: []Field{
			{
				ID:          FieldHostname,
				Label:       "Hostname",
				Description: "Machine hostname (networking.hostName).",
				Type:        TypeString,
				Default:     Value{Str: "nixos"},
				Validate:    ValidateHostname,
			},
			{
				ID:          FieldTimezone,
				Label:       "Time zone",
				Description: "System time zone (time.timeZone).",
				Type:        TypeChoice,
				Default:     Value{Str: "UTC"},
				Choices:     []string{"UTC", "Europe/London", "Europe/Berlin", "America/New_York", "America/Los_Angeles", "Asia/Tokyo"},
			},
			{
				ID:          FieldAutoUpgrade,
				Label:       "Auto upgrade",
				Description: "Enable periodic system upgrades (system.autoUpgrade).",
				Type:        TypeBool,
				Default:     Value{Bool: false},
			},
			{
				ID:          FieldStateVersion,
				Label:       "State version",
				Description: "NixOS release the state format tracks (system.stateVersion).",
				Type:        TypeChoice,
				Default:     Value{Str: "24.11"},
				Choices:     []string{"24.05", "24.11", "25.05"},
			},
		},
	},
	{
		ID:    "boot",
		Title: "Boot",
		Fields: []Field{
			{
				ID:          FieldBootLoader,
				Label:       "Boot loader",
				Description: "EFI boot loader to install.",
				Type:        TypeChoice,
				Default:     Value{Str: "systemd-boot"},
				Choices:     []string{"systemd-boot", "grub"},
			},
			{
				ID:          FieldQuietBoot,
				Label:       "Quiet boot",
				Description: "Suppress most kernel messages during boot.",
				Type:        TypeBool,
				Default:     Value{Bool: false},
			},
			{
				ID:          FieldBootTimeout,
				Label:       "Menu timeout",
				Description: "Seconds the boot menu waits before the default entry.",
				Type:        TypeInt,
				Default:     Value{Int: 5},
				Min:         0,
				Max:         30,
			},
		},
	},
	{
		ID:    "networking",
		Title: "Networking",
		Fields: []Field{
			{
				ID:          FieldNetworkManager,
				Label:       "NetworkManager",
				Description: "Manage connections with NetworkManager.",
				Type:        TypeBool,
				Default:     Value{Bool: true},
			},
			{
				ID:          FieldFirewall,
				Label:       "Firewall",
				Description: "Enable the NixOS firewall (networking.firewall).",
				Type:        TypeBool,
				Default:     Value{Bool: true},
			},
			{
				ID:          FieldSSH,
				Label:       "OpenSSH server",
				Description: "Run sshd (services.openssh).",
				Type:        TypeBool,
				Default:     Value{Bool: false},
			},
			{
				ID:          FieldSSHPort,
				Label:       "SSH port",
				Description: "Port sshd listens on.",
				Type:        TypeInt,
				Default:     Value{Int: 22},
				Min:         1,
				Max:         65535,
			},
		},
	},
	{
		ID:    "users",
		Title: "Users",
		Fields: []Field{
			{
				ID:          FieldUsername,
				Label:       "Username",
				Description: "Primary user account name.",
				Type:        TypeString,
				Default:     Value{Str: "nixos"},
				Validate:    ValidateUsername,
			},
			{
				ID:          FieldShell,
				Label:       "Shell",
				Description: "Login shell for the primary user.",
				Type:        TypeChoice,
				Default:     Value{Str: "bash"},
				Choices:     []string{"bash", "zsh", "fish"},
			},
			{
				ID:          FieldSudo,
				Label:       "Sudo access",
				Description: "Add the user to the wheel group.",
				Type:        TypeBool,
				Default:     Value{Bool: true},
			},
		},
	},
	{
		ID:    "desktop",
		Title: "Desktop",
		Fields: []Field{
			{
				ID:          FieldDesktop,
				Label:       "Environment",
				Description: "Desktop environment to install.",
				Type:        TypeChoice,
				Default:     Value{Str: "none"},
				Choices:     []string{"none", "gnome", "plasma", "xfce"},
			},
			{
				ID:          FieldAudio,
				Label:       "Audio",
				Description: "Enable PipeWire audio.",
				Type:        TypeBool,
				Default:     Value{Bool: true},
			},
			{
				ID:          FieldBluetooth,
				Label:       "Bluetooth",
				Description: "Enable bluetooth support (hardware.bluetooth).",
				Type:        TypeBool,
				Default:     Value{Bool: false},
			},
		},
	},
	{
		ID:    "nix",
		Title: "Nix",
		Fields: []Field{
			{
				ID:          FieldFlakes,
				Label:       "Flakes",
				Description: "Enable the flakes and nix-command experimental features.",
				Type:        TypeBool,
				Default:     Value{Bool: true},
			},
			{
				ID:          FieldGC,
				Label:       "Garbage collection",
				Description: "Run nix-collect-garbage weekly (nix.gc).",
				Type:        TypeBool,
				Default:     Value{Bool: true},
			},
			{
				ID:          FieldUnfree,
				Label:       "Allow unfree",
				Description: "Permit packages with unfree licenses.",
				Type:        TypeBool,
				Default:     Value{Bool: false},
			},
		},
	},
}

// FieldByID looks up a field definition anywhere in the catalog.
func FieldByID(id FieldID) (Field, bool) {
	for _, sec := range sections {
		for _, f := range sec.Fields {
			if f.ID == id {
				return f, true
			}
		}
	}
	return Field{}, false
}

// Defaults returns a fresh map of every field's default value.
func Defaults() map[FieldID]Value {
	out := make(map[FieldID]Value)
	for _, sec := range sections {
		for _, f := range sec.Fields {
			out[f.ID] = f.Default
		}
	}
	return out
}
