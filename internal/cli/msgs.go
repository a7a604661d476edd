package cli

// Command help text
const (
	MsgRootShort = "Copy vendor assets into assets/"
	MsgRootLong  = `assetcp copies third-party CSS, JS and source maps out of node_modules
(plus the project favicon) into the assets/ tree.

With no arguments it runs the default task of the selected rule table.
Patterns that match nothing are skipped. Any read or write failure stops the run.`

	MsgRunShort     = "Run one or more named tasks in order"
	MsgListShort    = "List the tasks of the selected rule table"
	MsgDumpShort    = "Print the selected rule table as a config file"
	MsgDumpLong     = "Print the selected rule table as TOML or YAML. The output can be edited and\npassed back with --config."
	MsgVersionShort = "Print version information"
	MsgManShort     = "Generate man pages into a directory"

	MsgRootExample = `  assetcp                           # run the default task
  assetcp run copy-jquery           # run a single task
  assetcp run copy-bulk copy-favicon
  assetcp --variant bulk --dry-run  # preview the bulk table`
)

// Flag descriptions
const (
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Show what would be copied without writing anything"
	MsgFlagNoColor = "Disable coloured output"
	MsgFlagRoot    = "Project root that patterns and destinations are relative to"
	MsgFlagVariant = "Rule table variant to use (split or bulk)"
	MsgFlagConfig  = "TOML or YAML file layered over the built-in rule tables"
	MsgFlagFormat  = "Output format: toml or yaml"
)
