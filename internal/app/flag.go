package app

import "github.com/urfave/cli/v2"

const (
	formatText = "text"
	formatJSON = "json"
)

var configFlag = &cli.StringFlag{
	Name:     "config",
	Aliases:  []string{"c"},
	Usage:    "Recognizer config file path",
	Required: true,
}

var debugFlag = &cli.BoolFlag{
	Name:  "debug",
	Usage: "Enable debug log",
	Value: false,
}

var logFileFlag = &cli.StringFlag{
	Name:  "log-file",
	Usage: "Debug log file path (default output/log-<unix time>.log)",
}

var outputFlag = &cli.StringFlag{
	Name:  "output",
	Usage: "Append final results to the file instead of stdout",
}

var formatFlag = &cli.StringFlag{
	Name:  "format",
	Usage: "Result format, text or json",
	Value: formatText,
}
