package diffmask

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Keep package.unmask in sync with the package.mask files"
	MsgUpdateShort     = "Reconcile package.unmask with the merged package.mask"
	MsgAddShort        = "Unmask packages, then update"
	MsgVimdiffShort    = "Open the merged package.mask next to package.unmask"
	MsgShowShort       = "Print the merged package.mask"
	MsgShowLong        = "Show prints the canonical package.mask built from every repository and profile, in the order update matches against."
	MsgInspectShort    = "Summarize the merged mask or package.unmask"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"
	MsgVersionShort    = "Print version information"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrHelpAbsent = "help command not found"
	MsgErrLoadConfig = "failed to load configuration: %w"
	MsgErrFormat     = "invalid --format: %w"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Compute the new package.unmask without writing it"
	MsgFlagUnmaskFile = "Override file to reconcile (default: <config-root>/etc/portage/package.unmask)"
	MsgFlagConfigRoot = "Portage configuration root (default: $PORTAGE_CONFIGROOT or /)"
	MsgFlagConfig     = "diffmask configuration file"
	MsgFlagFormat     = "Output format: auto, term, text, json, yaml"
	MsgFlagCmd        = "Viewer command, split with shell quoting rules"
	MsgFlagWrite      = "Create the configuration file from the commented defaults"

	// Version output
	MsgVersionFormat = "diffmask version %s\n  commit: %s\n  built:  %s\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/update-long.txt
	msgUpdateLongRaw string
	MsgUpdateLong    = strings.TrimSpace(msgUpdateLongRaw)

	//go:embed msgs/update-example.txt
	msgUpdateExampleRaw string
	MsgUpdateExample    = strings.TrimSpace(msgUpdateExampleRaw)

	//go:embed msgs/add-long.txt
	msgAddLongRaw string
	MsgAddLong    = strings.TrimSpace(msgAddLongRaw)

	//go:embed msgs/add-example.txt
	msgAddExampleRaw string
	MsgAddExample    = strings.TrimSpace(msgAddExampleRaw)

	//go:embed msgs/vimdiff-long.txt
	msgVimdiffLongRaw string
	MsgVimdiffLong    = strings.TrimSpace(msgVimdiffLongRaw)

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)

	//go:embed msgs/inspect-example.txt
	msgInspectExampleRaw string
	MsgInspectExample    = strings.TrimSpace(msgInspectExampleRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
