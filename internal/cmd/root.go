package cmd

import (
	"github.com/alecthomas/kong"
)

type CLI struct {
	Color   string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON    bool   `help:"JSON output to stdout; disables colors."`
	Plain   bool   `help:"TSV output to stdout; disables colors."`
	Verbose bool   `help:"Enable debug logging."`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version VersionCmd `cmd:"" help:"Print version."`
	Config  ConfigCmd  `cmd:"" help:"Manage configuration."`
	Feed    FeedCmd    `cmd:"" help:"Print the job feed."`
	Pay     PayCmd     `cmd:"" help:"Show how pay labels are displayed on job cards."`
	Preload PreloadCmd `cmd:"" help:"Warm the hero carousel images and report."`
	Open    OpenCmd    `cmd:"" help:"Open a job's location in maps."`
	Home    HomeCmd    `cmd:"" help:"Run the interactive home screen."`
	Proxies ProxiesCmd `cmd:"" help:"Proxy utilities."`
}

func NewCLI() *CLI {
	return &CLI{}
}
