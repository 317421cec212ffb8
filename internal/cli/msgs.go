package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort    = "Manage links to dotfiles"
	MsgLinkShort    = "Link dotfiles to files in the given profile directories"
	MsgUnlinkShort  = "Unlink dotfiles linked to files in the given profile directories"
	MsgConfigShort  = "Print the effective configuration"
	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"

	// Version output
	MsgVersionFormat = "dot version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrUsage      = "Error: dot: %s"
	MsgErrFatal      = "Error: %s"
	MsgErrNoCommand  = "a command is required (link or unlink)"
	MsgErrNoProfiles = "the following arguments are required: profiles"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv diagnostics)"
	MsgFlagDryRun   = "Report what would change without changing anything"
	MsgFlagNoDryRun = "Apply changes (default; overrides an earlier --dry-run)"
	MsgFlagHome     = "Home directory to link into"
	MsgFlagColor    = "Color output: auto, always or never"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/dot/config.toml)"
	MsgFlagLogFile  = "Diagnostic log file, - to disable (default $XDG_STATE_HOME/dot/dot.log)"
	MsgFlagFormat   = "Output format: toml or yaml"
	MsgFlagDefaults = "Print the built-in defaults file instead"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/link-example.txt
	msgLinkExampleRaw string
	MsgLinkExample    = strings.TrimRight(msgLinkExampleRaw, "\n")

	//go:embed msgs/unlink-long.txt
	msgUnlinkLongRaw string
	MsgUnlinkLong    = strings.TrimSpace(msgUnlinkLongRaw)

	//go:embed msgs/unlink-example.txt
	msgUnlinkExampleRaw string
	MsgUnlinkExample    = strings.TrimRight(msgUnlinkExampleRaw, "\n")

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)
)
